package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
	"github.com/mkazymov/vocab-practice-bot/internal/service"
)

// handleQuizCommand starts a quiz. Arguments are either empty (default
// count), a number, or a comma-separated word list.
func (h *Handler) handleQuizCommand(chatID int64, args string) {
	sess := h.session(chatID)

	if sess.Phase == entities.PhaseTesting {
		h.send(newPlainMessage(chatID, msgQuizActive))
		return
	}
	if len(sess.Table) == 0 {
		h.send(newPlainMessage(chatID, msgNoTable))
		return
	}

	sel, ok := h.parseSelection(chatID, args)
	if !ok {
		return
	}

	questions, err := h.quiz.Generate(sess.Table, sel, h.quizCfg.OptionsPerQuestion)
	if err != nil {
		h.sendQuizError(chatID, err)
		return
	}

	sess.StartQuiz(entities.NewQuiz(questions))
	h.sendQuestion(chatID, sess.ActiveQuiz, 0)
}

// parseSelection interprets the /quiz arguments.
func (h *Handler) parseSelection(chatID int64, args string) (service.Selection, bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return service.SelectCount(h.quizCfg.DefaultQuestions), true
	}

	if n, err := strconv.Atoi(args); err == nil {
		if n < 1 {
			h.send(newPlainMessage(chatID, msgQuizInvalidCount))
			return service.Selection{}, false
		}
		if n > h.quizCfg.MaxQuestions {
			n = h.quizCfg.MaxQuestions
		}
		return service.SelectCount(n), true
	}

	words := make([]string, 0)
	for _, w := range strings.Split(args, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return service.SelectWords(words), true
}

func (h *Handler) sendQuizError(chatID int64, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyTable):
		h.send(newPlainMessage(chatID, msgNoMeanings))
	case errors.Is(err, service.ErrNoMatchingWords):
		h.send(newPlainMessage(chatID, msgQuizNoMatches))
	default:
		h.logger.Error("failed to generate quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgQuizFailed))
	}
}

// sendQuestion sends question idx of the active quiz with its option
// buttons.
func (h *Handler) sendQuestion(chatID int64, quiz *entities.Quiz, idx int) {
	q := quiz.Questions[idx]

	msg := newHTMLMessage(chatID, fmt.Sprintf(
		"Question %d/%d\n\nWhich meaning matches <b>%s</b>?",
		idx+1, len(quiz.Questions), escapeHTML(q.Word),
	))
	kb := buildOptionsKeyboard(idx, q)
	msg.ReplyMarkup = &kb

	h.send(msg)
}

// handleQuizAnswer records one answer from a callback and advances the
// quiz, grading it after the last question.
func (h *Handler) handleQuizAnswer(query *tgbotapi.CallbackQuery, params []string) {
	chatID := query.Message.Chat.ID

	sess := h.session(chatID)
	quiz := sess.ActiveQuiz
	if quiz == nil || sess.Phase != entities.PhaseTesting {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}

	if len(params) != 2 {
		return
	}
	questionIdx, err1 := strconv.Atoi(params[0])
	optionIdx, err2 := strconv.Atoi(params[1])
	if err1 != nil || err2 != nil {
		return
	}

	// Stale or duplicate taps on an already answered question are ignored.
	if quiz.Answered(questionIdx) {
		return
	}
	quiz.Select(questionIdx, optionIdx)

	// Freeze the answered question: drop its keyboard and show the pick.
	if questionIdx >= 0 && questionIdx < len(quiz.Questions) {
		q := quiz.Questions[questionIdx]
		if optionIdx >= 0 && optionIdx < len(q.Options) {
			edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, fmt.Sprintf(
				"Question %d/%d\n\n<b>%s</b> — you chose: %s",
				questionIdx+1, len(quiz.Questions),
				escapeHTML(q.Word), escapeHTML(q.Options[optionIdx]),
			))
			edit.ParseMode = tgbotapi.ModeHTML
			h.send(edit)
		}
	}

	if !quiz.Complete() {
		h.sendQuestion(chatID, quiz, len(quiz.Selections))
		return
	}

	result := quiz.Grade()
	sess.FinishQuiz()

	msg := newHTMLMessage(chatID, processResult(result))
	kb := buildResultKeyboard()
	msg.ReplyMarkup = &kb
	h.send(msg)
}

func (h *Handler) handleCancelCommand(chatID int64) {
	sess := h.session(chatID)
	if sess.Phase != entities.PhaseTesting {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}

	sess.FinishQuiz()
	h.send(newPlainMessage(chatID, msgQuizCancelled))
}
