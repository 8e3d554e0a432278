package keywords

import (
	"errors"
	"fmt"
	"strings"
)

// MinJobDescriptionWords is the shortest job description worth analyzing.
// Anything below this yields noise instead of keywords.
const MinJobDescriptionWords = 10

// ErrJobTextEmpty is returned for empty or whitespace-only job descriptions.
var ErrJobTextEmpty = errors.New("job description is empty")

// ValidateJobText checks that a job description is substantial enough to
// extract keywords from.
func ValidateJobText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrJobTextEmpty
	}

	words := len(strings.Fields(trimmed))
	if words < MinJobDescriptionWords {
		return fmt.Errorf("job description too short: %d words, need at least %d", words, MinJobDescriptionWords)
	}

	return nil
}
