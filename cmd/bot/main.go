package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/client"
	"github.com/mkazymov/vocab-practice-bot/internal/config"
	"github.com/mkazymov/vocab-practice-bot/internal/delivery/telegram"
	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
	"github.com/mkazymov/vocab-practice-bot/internal/logger"
	"github.com/mkazymov/vocab-practice-bot/internal/repository"
	"github.com/mkazymov/vocab-practice-bot/internal/service"
	"github.com/mkazymov/vocab-practice-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync() //nolint:errcheck

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("failed to create bot API", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "study", Description: "Show a random word"},
		{Command: "quiz", Description: "Start a multiple-choice test"},
		{Command: "table", Description: "Show the loaded table"},
		{Command: "enrich", Description: "Fill missing meanings"},
		{Command: "cancel", Description: "Abandon the current test"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	zlog.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var startup entities.Table
	if cfg.TablePath != "" {
		startup, err = repository.LoadFile(cfg.TablePath)
		if err != nil {
			zlog.Fatal("failed to load startup table",
				zap.String("path", cfg.TablePath),
				zap.Error(err),
			)
		}
		zlog.Info("startup table loaded",
			zap.String("path", cfg.TablePath),
			zap.Int("rows", len(startup)),
		)
	}

	clients := client.InitClients()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	vocabService := service.NewVocabService(rng)
	generator := service.NewGenerator()
	enricher := service.NewEnrichmentService(
		clients.FTAPIClient,
		clients.MyMemoryClient,
		cfg.Enrichment.TargetLang,
		cfg.Enrichment.Timeout,
		zlog,
	)

	sessions := storage.NewSessionStore()

	handler := telegram.NewHandler(
		bot,
		zlog,
		sessions,
		vocabService,
		generator,
		enricher,
		cfg.Quiz,
		startup,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Fatal("handler stopped", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}
