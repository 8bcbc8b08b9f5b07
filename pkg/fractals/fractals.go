// Package fractals turns tomorrow's daily achievements into the daily and
// recommended fractal summary.
package fractals

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fractals-bot/pkg/gw2"
)

var ErrTooFewAchievements = errors.New("too few fractal achievements")

const (
	DailyLabel       = "Daily Fractals"
	RecommendedLabel = "Recommended Fractals"
)

// The API does not document which fractal achievement is which. These
// positions rely on it answering in the order the ids were requested.
var (
	RecommendedIndices = [...]int{0, 1, 2}
	DailyIndices       = [...]int{6, 10, 14}
)

// RequiredAchievements is the smallest response every index above fits in.
const RequiredAchievements = 15

type AchievementSource interface {
	FetchDailies() (*gw2.DailySet, error)
	FetchAchievements(ids []int) ([]gw2.Achievement, error)
}

type Resolver struct {
	source AchievementSource
}

func NewResolver(source AchievementSource) *Resolver {
	return &Resolver{source: source}
}

type Summary struct {
	Daily       string
	Recommended string
}

type Field struct {
	Name  string
	Value string
}

func (s *Summary) Fields() []Field {
	return []Field{
		{Name: DailyLabel, Value: s.Daily},
		{Name: RecommendedLabel, Value: s.Recommended},
	}
}

func (r *Resolver) Resolve() (*Summary, error) {
	dailies, err := r.source.FetchDailies()
	if err != nil {
		return nil, err
	}
	ids := FractalIDs(dailies)
	achievements, err := r.source.FetchAchievements(ids)
	if err != nil {
		return nil, err
	}
	if len(achievements) < RequiredAchievements {
		slog.Warn("fractals: received too few achievements", slog.Int("achievements.count", len(achievements)), slog.Any("achievement.ids", ids))
		return nil, fmt.Errorf("%w: need %d, got %d", ErrTooFewAchievements, RequiredAchievements, len(achievements))
	}
	return &Summary{
		Daily:       joinNames(achievements, DailyIndices[:]),
		Recommended: joinNames(achievements, RecommendedIndices[:]),
	}, nil
}

// FractalIDs returns the ids of the fractal dailies in their original order.
func FractalIDs(dailies *gw2.DailySet) []int {
	ids := make([]int, len(dailies.Fractals))
	for i, daily := range dailies.Fractals {
		ids[i] = daily.ID
	}
	return ids
}

func joinNames(achievements []gw2.Achievement, indices []int) string {
	names := make([]string, len(indices))
	for i, index := range indices {
		names[i] = achievements[index].Name
	}
	return strings.Join(names, ", ")
}
