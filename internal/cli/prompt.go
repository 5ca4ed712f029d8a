package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dafibh/datekit/internal/domain"
)

const (
	birthDatePrompt  = "Enter your DOB (YYYY-MM-DD): "
	invalidDateRetry = "Please enter a valid date in the form 1990-04-29."
	futureDateRetry  = "Your date of birth cannot be in the future."
)

// PromptBirthDate prompts on w and reads lines from r until a valid,
// non-future YYYY-MM-DD date is entered. Invalid input re-prompts; a closed
// or failing input stream ends the loop with the read error (io.EOF when the
// stream simply closed).
func PromptBirthDate(r io.Reader, w io.Writer, now func() time.Time) (domain.Date, error) {
	scanner := bufio.NewScanner(r)
	today := domain.FromTime(now())

	for {
		fmt.Fprint(w, birthDatePrompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return domain.Date{}, fmt.Errorf("reading birth date: %w", err)
			}
			return domain.Date{}, io.EOF
		}

		input := strings.TrimSpace(scanner.Text())
		birth, err := domain.ParseDate(input)
		if err != nil {
			fmt.Fprintln(w, invalidDateRetry)
			continue
		}
		if birth.After(today) {
			fmt.Fprintln(w, futureDateRetry)
			continue
		}
		return birth, nil
	}
}
