package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Take a multiple-choice quiz on a topic in the plain terminal",
	Long: `Generate a quiz on a topic and answer it line by line.

Answer each question with 1-4 or A-D. An empty line skips the question.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(strings.Join(args, " "))
	if topic == "" {
		return fmt.Errorf("topic is empty")
	}

	svc, cleanup, err := newTutor(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating quiz on %s...\n\n", topic)

	q, err := svc.Quiz(cmd.Context(), topic)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}

	playQuiz(cmd.InOrStdin(), out, q)
	return nil
}

// playQuiz asks each question on out, reads answers from in and prints
// the graded result.
func playQuiz(in io.Reader, out io.Writer, q *quiz.Quiz) (correct, total int) {
	scanner := bufio.NewScanner(in)
	answers := make(map[int]int, q.Len())

	for i, question := range q.Questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n", i+1, q.Len())
		fmt.Fprintln(out, question.Text)
		for j, opt := range question.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return report(out, q, answers)
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				fmt.Fprintln(out, "(skipped)")
				break
			}
			opt, ok := parseChoice(line, len(question.Options))
			if !ok {
				fmt.Fprintf(out, "Enter 1-%d or A-%c.\n", len(question.Options), 'A'+rune(len(question.Options)-1))
				continue
			}
			answers[i] = opt
			break
		}
		fmt.Fprintln(out)
	}

	return report(out, q, answers)
}

func report(out io.Writer, q *quiz.Quiz, answers map[int]int) (int, int) {
	for i, question := range q.Questions {
		mark := theme.Correct.Render("✓")
		if !q.IsCorrect(answers, i) {
			mark = theme.Incorrect.Render("✗")
		}
		fmt.Fprintf(out, "%s %d. %s  (answer: %s)\n", mark, i+1, question.Text, question.Options[question.Correct])
	}
	correct := q.Score(answers)
	fmt.Fprintf(out, "\nScore: %d / %d\n", correct, q.Len())
	return correct, q.Len()
}

// parseChoice accepts "1".."n" or "a".."d" (any case).
func parseChoice(s string, n int) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	var idx int
	switch {
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	default:
		return 0, false
	}
	if idx >= n {
		return 0, false
	}
	return idx, true
}
