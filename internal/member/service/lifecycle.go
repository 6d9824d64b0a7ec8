package service

import (
	"fmt"
	"time"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
)

// DisplayStatus is the two-valued status shown on list rows. It is
// derived locally from the end date and deliberately disagrees in
// granularity with the server's three-valued membership_status, which
// flows through untouched.
type DisplayStatus string

const (
	StatusActive  DisplayStatus = "Active"
	StatusExpired DisplayStatus = "Expired"
)

// tierMonths maps each tier to its renewal offset in months.
var tierMonths = map[domain.Tier]int{
	domain.TierMonthly:    1,
	domain.TierQuarterly:  3,
	domain.TierHalfYearly: 6,
	domain.TierYearly:     12,
}

// ComputeEndDate adds the tier's renewal offset to start using
// calendar-aware month addition. When the start day does not exist in
// the target month the day is clamped to that month's last day, so
// Jan 31 + monthly lands on Feb 28 (or 29) and Feb 29 + yearly lands on
// Feb 28. An unrecognized tier is a programming error and is reported
// as one.
func ComputeEndDate(start time.Time, tier domain.Tier) (time.Time, error) {
	months, ok := tierMonths[tier]
	if !ok {
		return time.Time{}, fmt.Errorf("no renewal offset defined for tier %q", tier)
	}

	return addMonthsClamped(start, months), nil
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// ComputeStatus compares endDate against today, both truncated to
// midnight: a membership ending today is still Active, one that ended
// yesterday is Expired.
func ComputeStatus(endDate, today time.Time) DisplayStatus {
	if truncateToDay(endDate).Before(truncateToDay(today)) {
		return StatusExpired
	}

	return StatusActive
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DefaultDraft prefills a new-member form: membership starts today on
// the monthly tier, end date derived from those two.
func DefaultDraft(today time.Time) domain.MemberDraft {
	start := truncateToDay(today)
	end, _ := ComputeEndDate(start, domain.TierMonthly)

	return domain.MemberDraft{
		Tier:      domain.TierMonthly,
		StartDate: domain.Date{Time: start},
		EndDate:   domain.Date{Time: end},
	}
}
