package entities

// Entry is a single vocabulary item: a word and its meaning.
// An empty meaning marks an entry that still needs enrichment.
type Entry struct {
	Word    string
	Meaning string
}

// Table is an ordered collection of vocabulary entries. Words act as
// selection keys, but the table does not enforce uniqueness structurally.
type Table []Entry

// Clean returns a copy of the table with entries missing a word or a
// meaning dropped. The receiver is never modified.
func (t Table) Clean() Table {
	out := make(Table, 0, len(t))
	for _, e := range t {
		if e.Word == "" || e.Meaning == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Meanings returns the meaning column in table order.
func (t Table) Meanings() []string {
	out := make([]string, 0, len(t))
	for _, e := range t {
		out = append(out, e.Meaning)
	}
	return out
}

// FindWord returns the first entry with the given word.
func (t Table) FindWord(word string) (Entry, bool) {
	for _, e := range t {
		if e.Word == word {
			return e, true
		}
	}
	return Entry{}, false
}

// MissingMeanings counts entries whose meaning is empty.
func (t Table) MissingMeanings() int {
	n := 0
	for _, e := range t {
		if e.Meaning == "" {
			n++
		}
	}
	return n
}
