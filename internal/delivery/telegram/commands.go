package telegram

import (
	"context"
	"fmt"
)

// handleTableCommand reports what is currently loaded.
func (h *Handler) handleTableCommand(chatID int64) {
	sess := h.session(chatID)
	if len(sess.Table) == 0 {
		h.send(newPlainMessage(chatID, msgNoTable))
		return
	}

	summary := h.vocab.Summarize(sess.Table)
	text := fmt.Sprintf(
		"Table: %d words, %d without a meaning.",
		summary.Rows, summary.MissingMeanings,
	)
	h.send(newPlainMessage(chatID, text))
}

// handleEnrichCommand fills missing meanings via the external services.
// Lookup failures leave entries untouched; the command never fails, it
// just reports how much it managed to fill.
func (h *Handler) handleEnrichCommand(ctx context.Context, chatID int64) {
	sess := h.session(chatID)
	if len(sess.Table) == 0 {
		h.send(newPlainMessage(chatID, msgNoTable))
		return
	}

	missing := sess.Table.MissingMeanings()
	if missing == 0 {
		h.send(newPlainMessage(chatID, "Every word already has a meaning."))
		return
	}

	h.send(newPlainMessage(chatID, msgEnriching))

	enriched, filled := h.enricher.FillMeanings(ctx, sess.Table)
	sess.Table = enriched

	text := fmt.Sprintf("Filled %d of %d missing meanings.", filled, missing)
	if filled < missing {
		text += " Run /enrich again later to retry the rest."
	}
	h.send(newPlainMessage(chatID, text))
}
