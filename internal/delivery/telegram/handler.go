package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/config"
	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
	"github.com/mkazymov/vocab-practice-bot/internal/service"
	"github.com/mkazymov/vocab-practice-bot/internal/storage"
)

type VocabService interface {
	RandomEntry(table entities.Table) (entities.Entry, error)
	Summarize(table entities.Table) service.Summary
}

type QuizGenerator interface {
	Generate(table entities.Table, sel service.Selection, nOptions int) ([]entities.Question, error)
}

type Enricher interface {
	FillMeanings(ctx context.Context, table entities.Table) (entities.Table, int)
}

type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	sessions *storage.SessionStore
	vocab    VocabService
	quiz     QuizGenerator
	enricher Enricher
	quizCfg  config.Quiz
	startup  entities.Table // optional table preloaded from config, copied into new sessions
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	sessions *storage.SessionStore,
	vocab VocabService,
	quiz QuizGenerator,
	enricher Enricher,
	quizCfg config.Quiz,
	startup entities.Table,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		sessions: sessions,
		vocab:    vocab,
		quiz:     quiz,
		enricher: enricher,
		quizCfg:  quizCfg,
		startup:  startup,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.Document != nil {
		h.handleDocument(ctx, chatID, update.Message.Document)
		return
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.session(chatID) // allocate the session up front
			h.send(newPlainMessage(chatID, msgWelcome))

		case "help":
			h.send(newPlainMessage(chatID, msgHelp))

		case "study":
			h.handleStudyCommand(chatID)

		case "quiz":
			h.handleQuizCommand(chatID, update.Message.CommandArguments())

		case "table":
			h.handleTableCommand(chatID)

		case "enrich":
			h.handleEnrichCommand(ctx, chatID)

		case "cancel":
			h.handleCancelCommand(chatID)

		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	h.send(newPlainMessage(chatID, msgHelp))
}

// session returns the chat's session, seeding a fresh one with the
// startup table when configured.
func (h *Handler) session(chatID int64) *entities.Session {
	if sess, ok := h.sessions.Get(chatID); ok {
		return sess
	}

	sess := h.sessions.GetOrCreate(chatID)
	if len(h.startup) > 0 {
		sess.Table = append(entities.Table(nil), h.startup...)
	}
	return sess
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
