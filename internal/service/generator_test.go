package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

func newTestGenerator(seed int64) *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewSource(seed)))
}

func animalTable() entities.Table {
	return entities.Table{
		{Word: "cat", Meaning: "a small domesticated feline"},
		{Word: "dog", Meaning: "a domesticated canine"},
		{Word: "bird", Meaning: "a flying animal"},
		{Word: "fish", Meaning: "an aquatic animal"},
	}
}

func countCorrect(q entities.Question) int {
	n := 0
	for _, opt := range q.Options {
		if opt == q.Correct {
			n++
		}
	}
	return n
}

func TestGenerator_Generate_CountMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		table    entities.Table
		count    int
		nOptions int
		wantLen  int
		wantErr  error
	}{
		{
			name:     "full table",
			table:    animalTable(),
			count:    4,
			nOptions: 4,
			wantLen:  4,
		},
		{
			name:     "count clamped to table size",
			table:    animalTable(),
			count:    100,
			nOptions: 4,
			wantLen:  4,
		},
		{
			name:     "count smaller than table",
			table:    animalTable(),
			count:    2,
			nOptions: 4,
			wantLen:  2,
		},
		{
			name:     "rows with missing data are dropped before clamping",
			table:    append(animalTable(), entities.Entry{Word: "ant"}, entities.Entry{Meaning: "orphan meaning"}),
			count:    10,
			nOptions: 4,
			wantLen:  4,
		},
		{
			name:     "nil table",
			table:    nil,
			count:    4,
			nOptions: 4,
			wantErr:  ErrInvalidTable,
		},
		{
			name:     "all meanings missing",
			table:    entities.Table{{Word: "cat"}, {Word: "dog"}},
			count:    2,
			nOptions: 4,
			wantErr:  ErrEmptyTable,
		},
		{
			name:     "too few options",
			table:    animalTable(),
			count:    2,
			nOptions: 1,
			wantErr:  ErrTooFewOptions,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(1)
			questions, err := g.Generate(tt.table, SelectCount(tt.count), tt.nOptions)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, questions, tt.wantLen)

			for _, q := range questions {
				assert.Len(t, q.Options, tt.nOptions)
				assert.GreaterOrEqual(t, countCorrect(q), 1,
					"options must contain the correct meaning")
				entry, ok := tt.table.FindWord(q.Word)
				require.True(t, ok)
				assert.Equal(t, entry.Meaning, q.Correct)
			}
		})
	}
}

func TestGenerator_Generate_ExactPool(t *testing.T) {
	t.Parallel()

	// 4 words, 4 options: the 3 wrong options exactly exhaust the other
	// meanings, so no fallback happens and every option is distinct.
	g := newTestGenerator(7)
	questions, err := g.Generate(animalTable(), SelectCount(4), 4)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	allMeanings := animalTable().Meanings()
	for _, q := range questions {
		assert.Equal(t, 1, countCorrect(q), "correct meaning appears exactly once")
		assert.ElementsMatch(t, allMeanings, q.Options,
			"options are exactly the four table meanings")
	}
}

func TestGenerator_Generate_FallbackPool(t *testing.T) {
	t.Parallel()

	// Only 2 words but 4 options: the wrong-meaning pool is too small, so
	// the generator falls back to the full meaning column and must not
	// fail.
	table := entities.Table{
		{Word: "cat", Meaning: "a small domesticated feline"},
		{Word: "dog", Meaning: "a domesticated canine"},
	}

	g := newTestGenerator(42)
	questions, err := g.Generate(table, SelectCount(2), 4)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, countCorrect(q), 1)
	}
}

func TestGenerator_Generate_ExplicitWords(t *testing.T) {
	t.Parallel()

	t.Run("matched subset", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(3)
		questions, err := g.Generate(animalTable(), SelectWords([]string{"cat", "fish"}), 4)
		require.NoError(t, err)
		require.Len(t, questions, 2)

		words := []string{questions[0].Word, questions[1].Word}
		assert.ElementsMatch(t, []string{"cat", "fish"}, words)
	})

	t.Run("duplicates and unknown words are dropped", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(3)
		questions, err := g.Generate(
			animalTable(),
			SelectWords([]string{"cat", "cat", "unicorn", "dog"}),
			4,
		)
		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("disjoint word set", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(3)
		_, err := g.Generate(animalTable(), SelectWords([]string{"unicorn", "dragon"}), 4)
		require.ErrorIs(t, err, ErrNoMatchingWords)
	})
}

func TestGenerator_Generate_DoesNotMutateTable(t *testing.T) {
	t.Parallel()

	table := animalTable()
	table = append(table, entities.Entry{Word: "ant"})
	original := append(entities.Table(nil), table...)

	g := newTestGenerator(11)
	_, err := g.Generate(table, SelectCount(3), 4)
	require.NoError(t, err)
	assert.Equal(t, original, table)
}

func TestGenerator_Generate_RepeatedCallsKeepShape(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(99)

	first, err := g.Generate(animalTable(), SelectCount(3), 4)
	require.NoError(t, err)
	second, err := g.Generate(animalTable(), SelectCount(3), 4)
	require.NoError(t, err)

	require.Len(t, first, len(second))
	for i := range first {
		assert.Len(t, first[i].Options, 4)
		assert.Len(t, second[i].Options, 4)
	}
}
