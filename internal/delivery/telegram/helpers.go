package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// processEntry formats the study pane for a single vocabulary entry.
func processEntry(e entities.Entry) string {
	return fmt.Sprintf(
		"<b>%s</b>\n\n%s",
		escapeHTML(e.Word),
		escapeHTML(e.Meaning),
	)
}

// processResult formats the final quiz score and missed words.
func processResult(r entities.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Score: <b>%d / %d</b> (%.1f%%)",
		r.Correct, r.Total, r.Percent(),
	))

	if len(r.Missed) > 0 {
		sb.WriteString("\n\nWords to review:\n")
		for _, w := range r.Missed {
			sb.WriteString("• ")
			sb.WriteString(escapeHTML(w))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func escapeHTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
