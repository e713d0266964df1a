package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
	"github.com/mkazymov/vocab-practice-bot/internal/repository"
)

const uploadTimeout = 30 * time.Second

// handleDocument replaces the session table with an uploaded CSV file.
func (h *Handler) handleDocument(ctx context.Context, chatID int64, doc *tgbotapi.Document) {
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".csv") {
		h.send(newPlainMessage(chatID, msgNotCSV))
		return
	}

	table, err := h.fetchTable(ctx, doc.FileID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingWordColumn):
			h.send(newPlainMessage(chatID, msgMissingWord))
		default:
			h.logger.Error("failed to load uploaded table",
				zap.Int64("chat_id", chatID),
				zap.String("file", doc.FileName),
				zap.Error(err),
			)
			h.send(newPlainMessage(chatID, msgUploadFailed))
		}
		return
	}
	if len(table) == 0 {
		h.send(newPlainMessage(chatID, msgTableEmpty))
		return
	}

	sess := h.session(chatID)
	sess.Table = table
	sess.FinishQuiz()

	summary := h.vocab.Summarize(table)
	text := fmt.Sprintf("Loaded %d words.", summary.Rows)
	if summary.MissingMeanings > 0 {
		text += fmt.Sprintf(
			"\n%d of them have no meaning yet — run /enrich to look them up.",
			summary.MissingMeanings,
		)
	} else {
		text += "\nStart with /study or /quiz."
	}
	h.send(newPlainMessage(chatID, text))
}

// fetchTable downloads the document from Telegram and parses it.
func (h *Handler) fetchTable(ctx context.Context, fileID string) (entities.Table, error) {
	fileURL, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file URL: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}

	return repository.ParseCSV(resp.Body)
}
