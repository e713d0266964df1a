package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

var (
	ErrMissingWordColumn = errors.New("table has no \"word\" column")
	ErrEmptyFile         = errors.New("table file is empty")
)

// ParseCSV reads a vocabulary table from CSV data. The header row must
// contain a "word" column; a "meaning" column is optional and missing
// meanings are left empty for later enrichment. Cells are trimmed and
// rows without a word are discarded.
func ParseCSV(r io.Reader) (entities.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	wordCol, meaningCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "word":
			wordCol = i
		case "meaning":
			meaningCol = i
		}
	}
	if wordCol == -1 {
		return nil, ErrMissingWordColumn
	}

	table := make(entities.Table, 0, len(records)-1)
	for _, rec := range records[1:] {
		e := entities.Entry{Word: strings.TrimSpace(cell(rec, wordCol))}
		if e.Word == "" {
			continue
		}
		if meaningCol != -1 {
			e.Meaning = strings.TrimSpace(cell(rec, meaningCol))
		}
		table = append(table, e)
	}

	return table, nil
}

// LoadFile reads a vocabulary table from a CSV file on disk.
func LoadFile(path string) (entities.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
