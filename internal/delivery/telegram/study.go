package telegram

import (
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

// handleStudyCommand shows a random word+meaning pane.
func (h *Handler) handleStudyCommand(chatID int64) {
	sess := h.session(chatID)
	if len(sess.Table) == 0 {
		h.send(newPlainMessage(chatID, msgNoTable))
		return
	}

	entry, err := h.vocab.RandomEntry(sess.Table)
	if err != nil {
		h.logger.Warn("no studiable entries",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgNoMeanings))
		return
	}

	if sess.Phase == entities.PhaseIdle {
		sess.Phase = entities.PhaseStudying
	}

	msg := newHTMLMessage(chatID, processEntry(entry))
	kb := buildStudyKeyboard()
	msg.ReplyMarkup = &kb
	h.send(msg)
}
