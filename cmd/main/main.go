package main

import (
	"context"
	"fractals-bot/pkg"
	"fractals-bot/pkg/config"
	"fractals-bot/pkg/fractals"
	"fractals-bot/pkg/gw2"
	"fractals-bot/pkg/handlers"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("FRACTALS_CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:           os.Getenv("SENTRY_DSN"),
		EnableTracing: false,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if os.Getenv("FRACTALS_ENVIRONMENT") == "PROD" { // only log events in prod
				return event
			}
			return nil
		},
	})
	if err != nil {
		panic(err)
	}

	defer sentry.Flush(2 * time.Second)

	fileWriter, err := os.OpenFile(cfg.Bot.DebugLog, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}
	defer fileWriter.Close()
	debugLogger := slog.New(slog.NewTextHandler(fileWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger := slog.New(slog.NewMultiHandler(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level: slog.LevelInfo,
		}),
		sentryslog.Option{
			EventLevel: []slog.Level{slog.LevelWarn, slog.LevelError},
		}.NewSentryHandler(context.Background())))
	slog.SetDefault(logger)

	slog.Info("starting the bot...", slog.String("disgo.version", disgo.Version), slog.Any("client.id", cfg.ApplicationID()))

	client := gw2.New(gw2.NewHTTPClient(cfg.API.Timeout(), cfg.API.UserAgent), cfg.API.BaseURL)
	b := &pkg.Bot{
		Resolver:    fractals.NewResolver(client),
		DebugLogger: debugLogger,
	}
	c := &pkg.Config{
		ApplicationID: cfg.ApplicationID(),
		HelloImage:    cfg.Bot.HelloImage,
	}
	h := handlers.NewHandler(b, c)

	discordClient, err := disgo.New(cfg.BotToken,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuildMessages, gateway.IntentDirectMessages, gateway.IntentMessageContent),
			gateway.WithPresenceOpts(gateway.WithPlayingActivity("Guild Wars 2"))),
		bot.WithEventListeners(h, &events.ListenerAdapter{
			OnReady:         h.OnReady,
			OnMessageCreate: h.OnMessageCreate,
		}))
	if err != nil {
		panic(err)
	}

	defer discordClient.Close(context.TODO())

	if cfg.Bot.ShouldSyncCommands() {
		if _, err := discordClient.Rest.SetGlobalCommands(c.ApplicationID, handlers.Commands); err != nil {
			slog.Error("error while syncing commands", slog.Any("client.id", c.ApplicationID), tint.Err(err))
		}
	}

	if err := discordClient.OpenGateway(context.TODO()); err != nil {
		panic(err)
	}

	slog.Info("fractals bot is now running.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s
}
