package entities

// Question is one multiple-choice quiz item. Options always has exactly
// the requested number of choices and contains Correct at exactly one
// position. Questions are immutable once generated.
type Question struct {
	Word    string
	Correct string
	Options []string
}

// Quiz holds the questions of an active quiz and the user's selections,
// keyed by question index. Selections store the chosen option index.
type Quiz struct {
	Questions  []Question
	Selections map[int]int
}

// NewQuiz creates a quiz over the given questions with no selections yet.
func NewQuiz(questions []Question) *Quiz {
	return &Quiz{
		Questions:  questions,
		Selections: make(map[int]int, len(questions)),
	}
}

// Select records the chosen option for a question. Out-of-range indices
// are ignored so stale callbacks cannot corrupt the quiz.
func (q *Quiz) Select(questionIdx, optionIdx int) {
	if questionIdx < 0 || questionIdx >= len(q.Questions) {
		return
	}
	if optionIdx < 0 || optionIdx >= len(q.Questions[questionIdx].Options) {
		return
	}
	q.Selections[questionIdx] = optionIdx
}

// Answered reports whether the question already has a selection.
func (q *Quiz) Answered(questionIdx int) bool {
	_, ok := q.Selections[questionIdx]
	return ok
}

// Complete reports whether every question has a selection.
func (q *Quiz) Complete() bool {
	return len(q.Selections) == len(q.Questions)
}

// Result is the outcome of a graded quiz.
type Result struct {
	Correct int
	Total   int
	Missed  []string // words answered incorrectly or not at all
}

// Percent returns the score as a percentage. A zero-question quiz grades
// to zero.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Grade compares each selection to the question's correct meaning by
// option text and returns the aggregate score and missed words.
func (q *Quiz) Grade() Result {
	res := Result{Total: len(q.Questions)}
	for i, question := range q.Questions {
		sel, ok := q.Selections[i]
		if ok && question.Options[sel] == question.Correct {
			res.Correct++
			continue
		}
		res.Missed = append(res.Missed, question.Word)
	}
	return res
}
