package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

func TestVocabService_RandomEntry(t *testing.T) {
	t.Parallel()

	t.Run("entry comes from the cleaned table", func(t *testing.T) {
		t.Parallel()

		s := NewVocabService(rand.New(rand.NewSource(5)))
		table := append(animalTable(), entities.Entry{Word: "ant"})
		for i := 0; i < 20; i++ {
			entry, err := s.RandomEntry(table)
			require.NoError(t, err)
			assert.NotEmpty(t, entry.Meaning, "entries without a meaning are not studiable")
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		s := NewVocabService(rand.New(rand.NewSource(5)))
		_, err := s.RandomEntry(entities.Table{{Word: "ant"}})
		require.ErrorIs(t, err, ErrEmptyTable)
	})
}

func TestVocabService_Summarize(t *testing.T) {
	t.Parallel()

	s := NewVocabService(rand.New(rand.NewSource(5)))
	table := append(animalTable(), entities.Entry{Word: "ant"})

	summary := s.Summarize(table)
	assert.Equal(t, 5, summary.Rows)
	assert.Equal(t, 1, summary.MissingMeanings)
}
