package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleCallback routes inline keyboard callbacks.
func (h *Handler) handleCallback(_ context.Context, query *tgbotapi.CallbackQuery) {
	// Acknowledge immediately so the client stops its spinner.
	if _, err := h.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		h.logger.Warn("failed to answer callback query",
			zap.Error(err),
		)
	}

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	cd := decodeCallback(query.Data)
	switch cd.Action {
	case actionStudy:
		h.handleStudyCommand(chatID)

	case actionQuiz:
		if len(cd.Params) == 0 {
			return
		}
		switch cd.Params[0] {
		case quizStart:
			h.handleQuizCommand(chatID, "")
		case quizAnswer:
			h.handleQuizAnswer(query, cd.Params[1:])
		}

	default:
		h.logger.Debug("unknown callback action",
			zap.String("data", cd.Raw),
		)
	}
}
