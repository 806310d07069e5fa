package tutor

import "fmt"

func explainPrompt(topic string) string {
	return fmt.Sprintf(
		"Explain this topic in simple, easy-to-understand terms for a student: %s. "+
			"Use clear examples and break it down step by step.",
		topic)
}

func quizPrompt(topic string, questions int) string {
	return fmt.Sprintf(`Generate a %d-question multiple choice quiz about: %s. Return ONLY valid JSON in this exact format with no other text:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": 0
    }
  ]
}
The "correct" field is the index (0-3) of the correct option.`, questions, topic)
}
