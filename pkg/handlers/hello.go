package handlers

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"fractals-bot/pkg/embeds"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func (h *Handler) HandleHelloSlash(event *handler.CommandEvent) error {
	messageCreate, ok := h.helloMessage()
	if !ok {
		return event.CreateMessage(discord.NewMessageCreate().
			WithContent("The demo image is not available.").
			WithEphemeral(true))
	}
	return event.CreateMessage(messageCreate)
}

// helloMessage reads the image from disk on every call.
func (h *Handler) helloMessage() (discord.MessageCreate, bool) {
	path := h.Config.HelloImage
	image, err := os.ReadFile(path)
	if err != nil {
		slog.Error("handlers: error while reading the hello image", slog.String("image.path", path), tint.Err(err))
		return discord.MessageCreate{}, false
	}
	return embeds.Hello(filepath.Base(path), bytes.NewReader(image)), true
}
