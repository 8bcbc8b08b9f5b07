package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrRead  = errors.New("couldn't read config file")
	ErrParse = errors.New("couldn't parse config file")
)

const (
	DefaultPath = "config.toml"

	defaultBaseURL        = "https://api.guildwars2.com"
	defaultTimeoutSeconds = 10
	defaultUserAgent      = "fractals-bot"
	defaultHelloImage     = "./ferris_eyes.png"
	defaultDebugLog       = "debug.log"
)

// Credentials are the Discord application credentials. They are loaded once
// at startup and never mutated.
type Credentials struct {
	ClientID     uint64 `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	BotToken     string `toml:"bot_token"`
}

func (c Credentials) ApplicationID() snowflake.ID {
	return snowflake.ID(c.ClientID)
}

type API struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Bot struct {
	HelloImage   string `toml:"hello_image"`
	DebugLog     string `toml:"debug_log"`
	SyncCommands *bool  `toml:"sync_commands"`
}

func (b Bot) ShouldSyncCommands() bool {
	return b.SyncCommands == nil || *b.SyncCommands
}

type Config struct {
	Credentials
	API API `toml:"api"`
	Bot Bot `toml:"bot"`
}

// Load reads the TOML file at path. Read failures wrap ErrRead, everything
// else (syntax, types, missing credentials) wraps ErrParse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ClientID == 0:
		return errors.New("missing field client_id")
	case c.ClientSecret == "":
		return errors.New("missing field client_secret")
	case c.BotToken == "":
		return errors.New("missing field bot_token")
	case c.API.TimeoutSeconds < 0:
		return fmt.Errorf("api.timeout_seconds must not be negative, got %d", c.API.TimeoutSeconds)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}
	if c.Bot.HelloImage == "" {
		c.Bot.HelloImage = defaultHelloImage
	}
	if c.Bot.DebugLog == "" {
		c.Bot.DebugLog = defaultDebugLog
	}
}
