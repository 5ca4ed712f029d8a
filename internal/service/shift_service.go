package service

import (
	"strings"
	"time"

	"github.com/dafibh/datekit/internal/domain"
)

// DaysPerWeek is the fixed week length used by week offsets.
const DaysPerWeek = 7

// ShiftService shifts base dates by day or week offsets relative to an
// injected clock.
type ShiftService struct {
	now func() time.Time
}

// NewShiftService creates a new ShiftService
func NewShiftService(now func() time.Time) *ShiftService {
	return &ShiftService{now: now}
}

// ResolveBase resolves a base-date token: "today" or "now" (case-insensitive)
// mean the clock's current date, anything else must be a strict YYYY-MM-DD
// date.
func (s *ShiftService) ResolveBase(token string) (domain.Date, error) {
	switch strings.ToLower(token) {
	case "today", "now":
		return domain.FromTime(s.now()), nil
	}
	return domain.ParseDate(token)
}

// DaysAhead returns base shifted by days (negative shifts backward).
func (s *ShiftService) DaysAhead(base domain.Date, days int) domain.Date {
	return base.AddDays(days)
}

// WeeksAhead returns base shifted by weeks (negative shifts backward).
func (s *ShiftService) WeeksAhead(base domain.Date, weeks int) domain.Date {
	return base.AddDays(weeks * DaysPerWeek)
}
