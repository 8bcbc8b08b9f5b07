package handlers

import (
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

// MessageSender is the part of rest.Rest used to answer text commands.
type MessageSender interface {
	CreateMessage(channelID snowflake.ID, messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
}

func (h *Handler) OnReady(ev *events.Ready) {
	slog.Info("handlers: connected to the gateway", slog.String("bot.name", ev.User.Username), slog.Any("bot.id", ev.User.ID))
}

func (h *Handler) OnMessageCreate(ev *events.MessageCreate) {
	if ev.Message.Author.Bot { // ignore bots, including our own replies
		return
	}
	h.HandleMessage(ev.Client().Rest, ev.ChannelID, ev.Message.Content)
}

// HandleMessage answers content in channelID with at most one message.
// Send failures are logged and dropped.
func (h *Handler) HandleMessage(sender MessageSender, channelID snowflake.ID, content string) {
	messageCreate, ok := h.Reply(content)
	if !ok {
		return
	}
	h.Bot.DebugLogger.Debug("handlers: replying to a command", slog.String("command", content), slog.Any("channel.id", channelID))
	if _, err := sender.CreateMessage(channelID, messageCreate); err != nil {
		slog.Error("handlers: error while sending a reply", slog.String("command", content), slog.Any("channel.id", channelID), tint.Err(err))
	}
}

// Reply builds the answer to a text command. ok is false when content is not
// a command or the reply could not be built.
func (h *Handler) Reply(content string) (messageCreate discord.MessageCreate, ok bool) {
	switch content {
	case HelloCommand:
		return h.helloMessage()
	case FractalsCommand:
		return discord.NewMessageCreateBuilder().
			SetEmbeds(h.fractalsEmbed()).
			Build(), true
	}
	return discord.MessageCreate{}, false
}
