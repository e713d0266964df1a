package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

var (
	ErrInvalidTable    = errors.New("table is missing required word/meaning data")
	ErrEmptyTable      = errors.New("no usable rows in table")
	ErrNoMatchingWords = errors.New("none of the requested words exist in the table")
	ErrTooFewOptions   = errors.New("at least 2 options per question are required")
)

// DefaultOptionCount is the number of answer choices per question when the
// caller does not override it.
const DefaultOptionCount = 4

// Selection describes which words to quiz: either a count of randomly
// picked words or an explicit word set.
type Selection struct {
	count int
	words []string
}

// SelectCount quizzes n words picked uniformly at random without
// replacement. n is clamped to the cleaned table size.
func SelectCount(n int) Selection {
	return Selection{count: n}
}

// SelectWords quizzes exactly the given words (deduplicated, order
// randomized). Words absent from the table are skipped; if none match,
// generation fails with ErrNoMatchingWords.
func SelectWords(words []string) Selection {
	return Selection{words: words}
}

// Generator produces multiple-choice quizzes from a vocabulary table.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source.
func NewGenerator() *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithRand creates a generator with the given random source,
// letting tests seed it for reproducibility.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one question per selected word. Each question pairs the
// word's meaning with nOptions-1 wrong meanings drawn from the other
// entries and shuffles the options. The input table is never modified.
func (g *Generator) Generate(table entities.Table, sel Selection, nOptions int) ([]entities.Question, error) {
	if table == nil {
		return nil, ErrInvalidTable
	}
	if nOptions < 2 {
		return nil, ErrTooFewOptions
	}

	cleaned := table.Clean()
	if len(cleaned) == 0 {
		return nil, ErrEmptyTable
	}

	targets, err := g.selectTargets(cleaned, sel)
	if err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, len(targets))
	for _, target := range targets {
		wrongs := g.drawWrongMeanings(cleaned, target, nOptions-1)

		options := append(wrongs, target.Meaning)
		g.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, entities.Question{
			Word:    target.Word,
			Correct: target.Meaning,
			Options: options,
		})
	}

	return questions, nil
}

// selectTargets resolves a Selection into the ordered list of entries to
// quiz on.
func (g *Generator) selectTargets(cleaned entities.Table, sel Selection) ([]entities.Entry, error) {
	if sel.words == nil {
		n := sel.count
		if n > len(cleaned) {
			n = len(cleaned)
		}
		if n < 0 {
			n = 0
		}

		// Uniform sample without replacement: shuffle a copy, take the head.
		pool := append(entities.Table(nil), cleaned...)
		g.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		return pool[:n], nil
	}

	targets := make([]entities.Entry, 0, len(sel.words))
	for _, w := range uniqueKeepOrder(sel.words) {
		if e, ok := cleaned.FindWord(w); ok {
			targets = append(targets, e)
		}
	}
	if len(targets) == 0 {
		return nil, ErrNoMatchingWords
	}

	g.rng.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	return targets, nil
}

// drawWrongMeanings draws count meanings without replacement from the
// meanings of all entries whose word differs from the target. When that
// pool is too small it falls back to the full meaning column, which may
// include the correct meaning itself; a question can then show the same
// text as both a wrong and the correct option. Known sampling quirk,
// kept as-is.
func (g *Generator) drawWrongMeanings(cleaned entities.Table, target entities.Entry, count int) []string {
	pool := make([]string, 0, len(cleaned))
	for _, e := range cleaned {
		if e.Word != target.Word {
			pool = append(pool, e.Meaning)
		}
	}
	if len(pool) < count {
		pool = cleaned.Meanings()
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) >= count {
		return append([]string(nil), pool[:count]...)
	}

	// Even the full column is short: top up with replacement so the
	// question still carries exactly count wrong options.
	wrongs := append([]string(nil), pool...)
	for len(wrongs) < count {
		wrongs = append(wrongs, pool[g.rng.Intn(len(pool))])
	}
	return wrongs
}

// uniqueKeepOrder removes duplicates while preserving the original order.
func uniqueKeepOrder(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
