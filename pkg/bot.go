package pkg

import (
	"log/slog"

	"fractals-bot/pkg/fractals"

	"github.com/disgoorg/snowflake/v2"
)

// Bot holds the collaborators shared by every handler invocation. None of
// them carry mutable state.
type Bot struct {
	Resolver    *fractals.Resolver
	DebugLogger *slog.Logger
}

type Config struct {
	ApplicationID snowflake.ID
	HelloImage    string
}
