package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dafibh/datekit/internal/domain"
	"github.com/dafibh/datekit/internal/service"
	"github.com/dafibh/datekit/internal/strftime"
)

// RunShift executes one shift-tool invocation: parse args, resolve the base
// date against the clock, shift by the offset, render, and write a single
// line to stdout. Any failure is returned as an *InvocationError; nothing is
// written on failure.
func RunShift(unit Unit, args []string, now func() time.Time, stdout io.Writer) error {
	inv, err := ParseShiftInvocation(unit, args)
	if err != nil {
		return err
	}

	shifts := service.NewShiftService(now)

	base, err := shifts.ResolveBase(inv.Base)
	if err != nil {
		return invalidInvocation(err, "invalid base date %q: expected YYYY-MM-DD or \"today\"", inv.Base)
	}

	var result domain.Date
	switch unit {
	case UnitWeeks:
		result = shifts.WeeksAhead(base, inv.Offset)
	default:
		result = shifts.DaysAhead(base, inv.Offset)
	}

	line, err := strftime.Format(result, inv.Format)
	if err != nil {
		return invalidInvocation(err, "invalid --format template: %v", err)
	}

	fmt.Fprintln(stdout, line)
	return nil
}
