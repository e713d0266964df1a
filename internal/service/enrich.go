package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

// EnrichmentService fills missing meanings using a dictionary lookup with
// a translation fallback. Service failures are swallowed: an entry whose
// lookups fail keeps its empty meaning and the user can retry later.
type EnrichmentService struct {
	dict       Dictionary
	translator Translator
	targetLang string
	timeout    time.Duration
	log        *zap.Logger
}

// NewEnrichmentService creates an enrichment service. Every external call
// is bounded by timeout.
func NewEnrichmentService(
	dict Dictionary,
	translator Translator,
	targetLang string,
	timeout time.Duration,
	log *zap.Logger,
) *EnrichmentService {
	return &EnrichmentService{
		dict:       dict,
		translator: translator,
		targetLang: targetLang,
		timeout:    timeout,
		log:        log,
	}
}

// FillMeanings returns a copy of the table with empty meanings filled
// where a lookup succeeded, plus the number of meanings filled. The input
// table is never modified and no error is ever returned to the caller.
func (s *EnrichmentService) FillMeanings(ctx context.Context, table entities.Table) (entities.Table, int) {
	out := append(entities.Table(nil), table...)

	filled := 0
	for i := range out {
		if out[i].Meaning != "" {
			continue
		}
		if meaning := s.lookupMeaning(ctx, out[i].Word); meaning != "" {
			out[i].Meaning = meaning
			filled++
		}
	}

	return out, filled
}

// lookupMeaning tries the dictionary first, then translation. Both paths
// degrade to an empty string on any failure.
func (s *EnrichmentService) lookupMeaning(ctx context.Context, word string) string {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	definition, err := s.dict.Lookup(callCtx, word)
	if err != nil {
		s.log.Warn("dictionary lookup failed",
			zap.String("word", word),
			zap.Error(err),
		)
	}
	if definition != "" {
		return definition
	}

	callCtx, cancel = context.WithTimeout(ctx, s.timeout)
	defer cancel()

	translation, err := s.translator.Translate(callCtx, word, s.targetLang)
	if err != nil {
		s.log.Warn("translation failed",
			zap.String("word", word),
			zap.Error(err),
		)
		return ""
	}

	return translation
}
