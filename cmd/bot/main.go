package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/flashcards-bot/internal/config"
	"github.com/aliskhannn/flashcards-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/flashcards-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flashcards-bot/internal/infra/llm"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flashcards-bot/internal/logger"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

var commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Запустить бота"},
	{Command: "next", Description: "Следующая карточка"},
	{Command: "add", Description: "Добавить слова (использование: /add кошка, дом)"},
	{Command: "decks", Description: "Мои колоды"},
	{Command: "newdeck", Description: "Создать колоду (использование: /newdeck Глаголы)"},
	{Command: "reminders", Description: "Напоминания"},
	{Command: "help", Description: "Помощь"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("bot stopped with error", zap.Error(err))
	}
	zapLogger.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(dsn); err != nil {
			return err
		}
		zapLogger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)

	generator := llm.NewGenerator(llm.Config{
		APIKey:         cfg.OpenAI.APIKey,
		Model:          cfg.OpenAI.Model,
		BaseURL:        cfg.OpenAI.BaseURL,
		Timeout:        cfg.OpenAI.Timeout,
		SourceLanguage: cfg.Languages.Source,
		TargetLanguage: cfg.Languages.Target,
	}, zapLogger.Named("llm"))

	flashcards := service.NewFlashcardService(
		postgres.NewTransactor(pool),
		service.Repositories{
			Users:     userRepo,
			Cards:     repository.NewCardRepository(pool),
			Decks:     repository.NewDeckRepository(pool),
			UserCards: repository.NewUserCardRepository(pool),
		},
		generator,
		service.Languages{Source: cfg.Languages.Source, Target: cfg.Languages.Target},
		zapLogger.Named("flashcards"),
	)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = !cfg.IsProduction() && cfg.LogLevel == "debug"
	zapLogger.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(bot, zapLogger.Named("telegram"), flashcards)

	reminders := service.NewReminderService(
		repository.NewReminderRepository(pool),
		userRepo,
		cfg.Reminders.Interval,
		zapLogger.Named("reminders"),
	)
	reminders.SetNotifier(handler)

	g, gctx := errgroup.WithContext(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	g.Go(func() error {
		<-gctx.Done()
		bot.StopReceivingUpdates()
		return nil
	})

	g.Go(func() error {
		return handler.Run(gctx, updates)
	})

	g.Go(func() error {
		return reminders.Start(gctx, cfg.Reminders.Schedule)
	})

	if cfg.HTTP.Enabled {
		api := httpapi.NewHandler(httpapi.Config{
			BotToken:        cfg.TelegramAPIToken,
			RateLimit:       cfg.HTTP.RateLimit,
			AllowHeaderAuth: cfg.HTTP.AllowHeaderAuth,
		}, flashcards, zapLogger.Named("http"))

		g.Go(func() error {
			return httpapi.Serve(gctx, cfg.HTTP.Addr, api.Router(), zapLogger)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
