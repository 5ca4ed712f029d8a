// Package strftime renders calendar dates using strftime-style percent
// directives, covering the date-valued subset relevant to day-precision
// tools.
package strftime

import (
	"fmt"
	"strings"

	"github.com/dafibh/datekit/internal/domain"
)

// DefaultTemplate is the ISO 8601 day format.
const DefaultTemplate = "%Y-%m-%d"

// Format renders d according to template. Literal text passes through
// unchanged; an unrecognized directive or a trailing bare % is an error
// rather than silent passthrough.
func Format(d domain.Date, template string) (string, error) {
	t := d.Time()

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i == len(template)-1 {
			return "", fmt.Errorf("%w: %q", domain.ErrTrailingPercent, template)
		}
		i++
		switch template[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", d.Year)
		case 'y':
			fmt.Fprintf(&b, "%02d", d.Year%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(d.Month))
		case 'd':
			fmt.Fprintf(&b, "%02d", d.Day)
		case 'B':
			b.WriteString(d.Month.String())
		case 'b':
			b.WriteString(t.Format("Jan"))
		case 'A':
			b.WriteString(t.Weekday().String())
		case 'a':
			b.WriteString(t.Format("Mon"))
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case '%':
			b.WriteByte('%')
		default:
			return "", fmt.Errorf("%w: %%%c", domain.ErrUnknownDirective, template[i])
		}
	}

	return b.String(), nil
}
