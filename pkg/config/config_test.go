package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
client_id = 123456789012345678
client_secret = "secret"
bot_token = "token"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, uint64(123456789012345678), cfg.ClientID)
	assert.Equal(t, snowflake.ID(123456789012345678), cfg.ApplicationID())
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "token", cfg.BotToken)

	assert.Equal(t, "https://api.guildwars2.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
	assert.Equal(t, "fractals-bot", cfg.API.UserAgent)
	assert.Equal(t, "./ferris_eyes.png", cfg.Bot.HelloImage)
	assert.Equal(t, "debug.log", cfg.Bot.DebugLog)
	assert.True(t, cfg.Bot.ShouldSyncCommands())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[api]
base_url = "http://localhost:8080"
timeout_seconds = 3
user_agent = "test-agent"

[bot]
hello_image = "assets/hello.png"
debug_log = "/tmp/bot.log"
sync_commands = false
`))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout())
	assert.Equal(t, "test-agent", cfg.API.UserAgent)
	assert.Equal(t, "assets/hello.png", cfg.Bot.HelloImage)
	assert.Equal(t, "/tmp/bot.log", cfg.Bot.DebugLog)
	assert.False(t, cfg.Bot.ShouldSyncCommands())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: `client_id = = 1`},
		{name: "wrong type", content: `client_id = "abc"
client_secret = "secret"
bot_token = "token"`},
		{name: "missing client id", content: `client_secret = "secret"
bot_token = "token"`},
		{name: "missing secret", content: `client_id = 1
bot_token = "token"`},
		{name: "missing token", content: `client_id = 1
client_secret = "secret"`},
		{name: "negative timeout", content: minimalConfig + `
[api]
timeout_seconds = -5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrRead)
		})
	}
}

func TestLoad_Example(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, "your-bot-token", cfg.BotToken)
	assert.Equal(t, "./ferris_eyes.png", cfg.Bot.HelloImage)
}
