package quiz

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the quiz invariants and returns every violation found,
// or nil.
func (q *Quiz) Validate() error {
	if q.Len() == 0 {
		return fmt.Errorf("quiz has no questions")
	}

	var errs []error
	for i, qs := range q.Questions {
		if strings.TrimSpace(qs.Text) == "" {
			errs = append(errs, fmt.Errorf("question %d: empty text", i+1))
		}
		if len(qs.Options) != OptionCount {
			errs = append(errs, fmt.Errorf("question %d: has %d options, want %d", i+1, len(qs.Options), OptionCount))
		}
		if qs.Correct < 0 || qs.Correct >= len(qs.Options) {
			errs = append(errs, fmt.Errorf("question %d: correct index %d out of range", i+1, qs.Correct))
		}
	}

	return multierror.Append(nil, errs...).ErrorOrNil()
}
