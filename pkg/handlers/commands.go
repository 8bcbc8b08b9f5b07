package handlers

import (
	"fractals-bot/pkg"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

const (
	HelloCommand    = "!hello"
	FractalsCommand = "!fractals"
)

// Commands are the application commands mirroring the text commands.
var Commands = []discord.ApplicationCommandCreate{
	discord.SlashCommandCreate{
		Name:        "hello",
		Description: "Sends a demo embed",
	},
	discord.SlashCommandCreate{
		Name:        "fractals",
		Description: "Shows tomorrow's daily and recommended fractals",
	},
}

func NewHandler(b *pkg.Bot, c *pkg.Config) *Handler {
	mux := handler.New()
	mux.Error(func(e *handler.InteractionEvent, err error) {
		i := e.Interaction.(discord.ApplicationCommandInteraction)
		slog.Error("handlers: error while handling a command", slog.String("command.name", i.Data.CommandName()), tint.Err(err))
		_ = e.Respond(discord.InteractionResponseTypeCreateMessage, discord.NewMessageCreate().
			WithContentf("There was an error while handling the command: %v", err).
			WithEphemeral(true))
	})
	handlers := &Handler{
		Bot:    b,
		Config: c,
		Router: mux,
	}
	handlers.Command("/hello", handlers.HandleHelloSlash)
	handlers.Command("/fractals", handlers.HandleFractalsSlash)
	return handlers
}

type Handler struct {
	Bot    *pkg.Bot
	Config *pkg.Config
	handler.Router
}
