package service

import (
	"math/rand"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

// VocabService serves the study pane: random entries and table summaries.
type VocabService struct {
	rng *rand.Rand
}

func NewVocabService(rng *rand.Rand) *VocabService {
	return &VocabService{rng: rng}
}

// RandomEntry picks a uniformly random entry from the cleaned table.
func (s *VocabService) RandomEntry(table entities.Table) (entities.Entry, error) {
	cleaned := table.Clean()
	if len(cleaned) == 0 {
		return entities.Entry{}, ErrEmptyTable
	}
	return cleaned[s.rng.Intn(len(cleaned))], nil
}

// Summary describes the loaded table for the /table command.
type Summary struct {
	Rows            int
	MissingMeanings int
}

func (s *VocabService) Summarize(table entities.Table) Summary {
	return Summary{
		Rows:            len(table),
		MissingMeanings: table.MissingMeanings(),
	}
}
