package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dafibh/datekit/internal/domain"
	"github.com/dafibh/datekit/internal/strftime"
)

// Process exit codes.
const (
	ExitSuccess           = 0
	ExitInputClosed       = 1
	ExitInvalidInvocation = 2
)

// Unit is the offset unit of a shift tool.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitWeeks Unit = "weeks"
)

// ShiftInvocation is the parsed command line of a shift tool.
type ShiftInvocation struct {
	Base   string
	Offset int
	Format string
}

// InvocationError reports a rejected command line along with the exit code
// the process should terminate with.
type InvocationError struct {
	ExitCode int
	Message  string
	Err      error
}

func (e *InvocationError) Error() string {
	return e.Message
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code: an InvocationError's own
// code, or ExitInputClosed for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}
	return ExitInputClosed
}

func invalidInvocation(err error, format string, args ...any) error {
	return &InvocationError{
		ExitCode: ExitInvalidInvocation,
		Message:  fmt.Sprintf(format, args...),
		Err:      err,
	}
}

// ShiftUsage returns the usage line for a shift tool.
func ShiftUsage(tool string, unit Unit) string {
	return fmt.Sprintf("usage: %s <base_date> <%s> [--format TEMPLATE]", tool, unit)
}

// ParseShiftInvocation parses the arguments of a shift tool: two positionals
// (base date token, signed integer offset) and an optional --format/-f
// template. Flags may appear before or after the positionals.
//
// The offset positional can itself look like a flag (-5), so flags are
// extracted by name rather than handed to a flag.FlagSet. Parse errors are
// returned, not printed; the caller owns all output.
func ParseShiftInvocation(unit Unit, args []string) (ShiftInvocation, error) {
	inv := ShiftInvocation{Format: strftime.DefaultTemplate}

	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--format" || arg == "-f":
			if i == len(args)-1 {
				return ShiftInvocation{}, invalidInvocation(nil, "%s requires a value", arg)
			}
			i++
			inv.Format = args[i]
		case strings.HasPrefix(arg, "--format="):
			inv.Format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "-f="):
			inv.Format = strings.TrimPrefix(arg, "-f=")
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) < 2 {
		return ShiftInvocation{}, invalidInvocation(nil, "expected <base_date> and <%s> arguments", unit)
	}
	if len(positionals) > 2 {
		return ShiftInvocation{}, invalidInvocation(nil, "unexpected arguments: %s", strings.Join(positionals[2:], " "))
	}

	inv.Base = positionals[0]

	offset, err := strconv.Atoi(positionals[1])
	if err != nil {
		return ShiftInvocation{}, invalidInvocation(domain.ErrInvalidOffset,
			"invalid %s value %q: expected a signed integer", unit, positionals[1])
	}
	inv.Offset = offset

	return inv, nil
}
