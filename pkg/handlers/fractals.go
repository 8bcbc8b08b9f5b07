package handlers

import (
	"log/slog"

	"fractals-bot/pkg/embeds"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func (h *Handler) HandleFractalsSlash(event *handler.CommandEvent) error {
	if err := event.DeferCreateMessage(false); err != nil {
		return err
	}
	_, err := event.UpdateInteractionResponse(discord.NewMessageUpdateBuilder().
		SetEmbeds(h.fractalsEmbed()).
		Build())
	return err
}

func (h *Handler) fractalsEmbed() discord.Embed {
	summary, err := h.Bot.Resolver.Resolve()
	if err != nil {
		slog.Error("handlers: could not resolve fractals", tint.Err(err))
		return embeds.Error(err)
	}
	h.Bot.DebugLogger.Debug("handlers: resolved fractals", slog.String("fractals.daily", summary.Daily), slog.String("fractals.recommended", summary.Recommended))
	return embeds.Fractals(summary)
}
