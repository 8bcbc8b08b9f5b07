package gw2

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/disgoorg/json"
	"github.com/lmittmann/tint"
)

const (
	dailiesTomorrowPath = "/v2/achievements/daily/tomorrow"
	achievementsPath    = "/v2/achievements?ids=%s"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchDailies returns tomorrow's daily achievements.
func (c *Client) FetchDailies() (*DailySet, error) {
	var dailies DailySet
	if err := c.get(c.baseURL+dailiesTomorrowPath, &dailies); err != nil {
		return nil, err
	}
	return &dailies, nil
}

// FetchAchievements returns the achievements for ids in the order the API
// answers with. An empty ids is sent as is.
func (c *Client) FetchAchievements(ids []int) ([]Achievement, error) {
	var achievements []Achievement
	if err := c.get(c.baseURL+fmt.Sprintf(achievementsPath, JoinIDs(ids)), &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) get(url string, v any) error {
	slog.Info("gw2: requesting", slog.String("request.url", url))
	rs, err := c.httpClient.Get(url)
	if err != nil {
		slog.Error("gw2: error while running a request", slog.String("request.url", url), tint.Err(err))
		return networkError(url, err)
	}
	defer rs.Body.Close()
	status := rs.StatusCode
	// 206 is returned when only some of the requested ids exist
	if status != http.StatusOK && status != http.StatusPartialContent {
		slog.Warn("gw2: received an unexpected code", slog.Int("status.code", status), slog.String("request.url", url))
		return networkError(url, fmt.Errorf("unexpected status code %d", status))
	}
	body, err := io.ReadAll(rs.Body)
	if err != nil {
		slog.Error("gw2: error while reading a response", slog.Int("status.code", status), slog.String("request.url", url), tint.Err(err))
		return networkError(url, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		slog.Error("gw2: error while unmarshalling a response", slog.Int("status.code", status), slog.String("request.url", url), tint.Err(err))
		return decodeError(url, err)
	}
	return nil
}

// JoinIDs joins ids with commas, without a trailing separator.
func JoinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
