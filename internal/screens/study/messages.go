package study

import "github.com/abhisek/studybuddy/internal/quiz"

// explainDoneMsg carries an explain result back to Update.
type explainDoneMsg struct {
	Generation uint64
	Text       string
}

// quizDoneMsg carries a quiz result back to Update. Quiz is nil on
// failure and Message holds the text to show.
type quizDoneMsg struct {
	Generation uint64
	Quiz       *quiz.Quiz
	Message    string
}

// spinnerTickMsg advances the loading animation for one generation.
type spinnerTickMsg struct {
	Generation uint64
}
