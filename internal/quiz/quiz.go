// Package quiz holds the multiple-choice quiz model: decoding a model
// reply into a Quiz, checking its shape, and scoring answers.
package quiz

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Quiz is an ordered list of questions. A Quiz returned by Parse always
// has at least one question and every question passes Validate.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is one multiple-choice item. Correct indexes Options.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Questions)
}

// Complete reports whether answers holds a choice for every question.
// An empty quiz is never complete.
func (q *Quiz) Complete(answers map[int]int) bool {
	if q.Len() == 0 {
		return false
	}
	for i := range q.Questions {
		if _, ok := answers[i]; !ok {
			return false
		}
	}
	return true
}

// IsCorrect reports whether the recorded answer for question i matches
// its correct option. Unanswered questions are incorrect.
func (q *Quiz) IsCorrect(answers map[int]int, i int) bool {
	if i < 0 || i >= q.Len() {
		return false
	}
	a, ok := answers[i]
	return ok && a == q.Questions[i].Correct
}

// Score counts the questions whose recorded answer equals the correct
// index. Answers for indices outside the quiz are ignored.
func (q *Quiz) Score(answers map[int]int) int {
	score := 0
	for i := range q.Len() {
		if q.IsCorrect(answers, i) {
			score++
		}
	}
	return score
}
