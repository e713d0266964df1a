package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionStudy = "study"
	actionQuiz  = "quiz"
)

// Study sub-actions.
const (
	studyNext = "next"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "answer"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildStudyNextCallback builds callback data for re-rolling the study pane.
func buildStudyNextCallback() string {
	return callbackData{
		Action: actionStudy,
		Params: []string{studyNext},
	}.encode()
}

// buildQuizStartCallback builds callback data for starting a new default quiz.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(questionIdx, optionIdx int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			strconv.Itoa(questionIdx),
			strconv.Itoa(optionIdx),
		},
	}.encode()
}
