package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/datekit/internal/domain"
	"github.com/dafibh/datekit/internal/testutil"
)

func TestRunShift_Days(t *testing.T) {
	clock := testutil.FixedClock(2025, time.September, 10)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"forward", []string{"2025-09-10", "30"}, "2025-10-10\n"},
		{"backward", []string{"2025-09-10", "-5"}, "2025-09-05\n"},
		{"zero", []string{"2025-09-10", "0"}, "2025-09-10\n"},
		{"today token", []string{"today", "7"}, "2025-09-17\n"},
		{"now token", []string{"now", "0"}, "2025-09-10\n"},
		{"into leap day", []string{"2024-02-28", "1"}, "2024-02-29\n"},
		{"past leap day", []string{"2024-02-29", "1"}, "2024-03-01\n"},
		{"custom us format", []string{"2025-01-15", "10", "--format", "%m/%d/%Y"}, "01/25/2025\n"},
		{"verbose format", []string{"2025-01-15", "10", "-f", "%B %d, %Y"}, "January 25, 2025\n"},
		{"weekday format", []string{"2025-01-01", "8", "-f", "%A, %Y-%m-%d"}, "Thursday, 2025-01-09\n"},
		{"day of year format", []string{"2025-01-01", "8", "-f", "Day %j of %Y"}, "Day 009 of 2025\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := RunShift(UnitDays, tt.args, clock, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunShift_Weeks(t *testing.T) {
	clock := testutil.FixedClock(2025, time.September, 10)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"forward", []string{"2025-09-10", "12"}, "2025-12-03\n"},
		{"backward", []string{"2025-09-10", "-2"}, "2025-08-27\n"},
		{"today token", []string{"today", "3"}, "2025-10-01\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := RunShift(UnitWeeks, tt.args, clock, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunShift_FailuresProduceNoOutput(t *testing.T) {
	clock := testutil.FixedClock(2025, time.September, 10)

	tests := []struct {
		name     string
		args     []string
		sentinel error
	}{
		{"bad base date", []string{"tomorrow", "5"}, domain.ErrInvalidDate},
		{"impossible date", []string{"2025-02-30", "5"}, domain.ErrInvalidDate},
		{"bad offset", []string{"2025-09-10", "week"}, domain.ErrInvalidOffset},
		{"unknown directive", []string{"2025-09-10", "5", "-f", "%Q"}, domain.ErrUnknownDirective},
		{"trailing percent", []string{"2025-09-10", "5", "-f", "%Y %"}, domain.ErrTrailingPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := RunShift(UnitDays, tt.args, clock, &out)
			require.ErrorIs(t, err, tt.sentinel)

			var invErr *InvocationError
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, ExitInvalidInvocation, invErr.ExitCode)
			assert.Empty(t, out.String(), "failed invocation must not write partial output")
		})
	}
}
