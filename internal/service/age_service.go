package service

import (
	"fmt"
	"time"

	"github.com/dafibh/datekit/internal/domain"
)

// AgeResult holds an age broken down as full years plus extra months.
type AgeResult struct {
	Years  int
	Months int
}

// Sentence renders the age as a human-readable sentence with correct
// singular/plural units.
func (a AgeResult) Sentence() string {
	unitY := "years"
	if a.Years == 1 {
		unitY = "year"
	}
	unitM := "months"
	if a.Months == 1 {
		unitM = "month"
	}
	return fmt.Sprintf("You are %d %s and %d %s old.", a.Years, unitY, a.Months, unitM)
}

// AgeService computes ages relative to an injected clock
type AgeService struct {
	now func() time.Time
}

// NewAgeService creates a new AgeService
func NewAgeService(now func() time.Time) *AgeService {
	return &AgeService{now: now}
}

// Age computes the age for a birth date as of the service clock's today.
// A birth date after today is rejected.
func (s *AgeService) Age(birth domain.Date) (AgeResult, error) {
	today := domain.FromTime(s.now())
	if birth.After(today) {
		return AgeResult{}, fmt.Errorf("%w: %s", domain.ErrFutureDate, birth)
	}
	return AgeBetween(birth, today), nil
}

// AgeBetween computes (years, months) between a birth date and a reference
// date, with 0 <= months <= 11. The caller must ensure birth <= today.
//
// Only the (month, day) ordinals are compared, so a Feb 29 birth date ages
// correctly in non-leap years.
func AgeBetween(birth, today domain.Date) AgeResult {
	years := today.Year - birth.Year
	months := int(today.Month) - int(birth.Month)

	// Birthday day-of-month not reached yet this month: borrow a month.
	if today.Day < birth.Day {
		months--
	}
	// Borrowed past January: borrow a year.
	if months < 0 {
		months += 12
		years--
	}

	return AgeResult{Years: years, Months: months}
}
