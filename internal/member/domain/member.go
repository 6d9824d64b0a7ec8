package domain

import (
	"fmt"
	"strings"
	"time"
)

// Tier is the membership duration category. It determines the renewal
// offset applied to a member's start date.
type Tier string

const (
	TierMonthly    Tier = "monthly"
	TierQuarterly  Tier = "quarterly"
	TierHalfYearly Tier = "half_yearly"
	TierYearly     Tier = "yearly"
)

// ParseTier normalizes a wire value into a Tier. The record service has
// shipped the half-yearly tier both with a space and with an underscore;
// both spellings are accepted.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return TierMonthly, nil
	case "quarterly":
		return TierQuarterly, nil
	case "half_yearly", "half yearly", "half-yearly":
		return TierHalfYearly, nil
	case "yearly":
		return TierYearly, nil
	}

	return "", fmt.Errorf("unknown membership tier %q", s)
}

func (t Tier) Valid() bool {
	switch t {
	case TierMonthly, TierQuarterly, TierHalfYearly, TierYearly:
		return true
	}

	return false
}

// ServerStatus is the three-valued membership status computed by the
// record service. It is consumed as-is, never derived locally.
type ServerStatus string

const (
	ServerStatusActive       ServerStatus = "active"
	ServerStatusExpiringSoon ServerStatus = "expiring_soon"
	ServerStatusExpired      ServerStatus = "expired"
)

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}

	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Member is a gym member as served by the record service. ID is the
// numeric display identifier; DocumentID keys every mutation.
type Member struct {
	ID           int          `json:"id,omitempty"`
	DocumentID   string       `json:"documentId,omitempty"`
	FullName     string       `json:"full_name"`
	PhoneNumber  string       `json:"phone_number"`
	Email        string       `json:"email,omitempty"`
	Tier         Tier         `json:"membership_type"`
	StartDate    Date         `json:"start_date"`
	EndDate      Date         `json:"end_date"`
	IsActive     *bool        `json:"is_active,omitempty"`
	ServerStatus ServerStatus `json:"membership_status,omitempty"`
	CreatedAt    *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
}

// MemberDraft carries the writable fields of a member for create and
// update calls.
type MemberDraft struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number"`
	Tier        Tier   `json:"membership_type"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

// PageWindow is a 1-based pagination window over a row collection.
type PageWindow struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func (w PageWindow) TotalPages() int {
	if w.PageSize <= 0 {
		return 1
	}

	pages := (w.Total + w.PageSize - 1) / w.PageSize
	if pages < 1 {
		pages = 1
	}

	return pages
}

// Clamp forces Page into [1, TotalPages].
func (w PageWindow) Clamp() PageWindow {
	if w.Page < 1 {
		w.Page = 1
	}
	if max := w.TotalPages(); w.Page > max {
		w.Page = max
	}

	return w
}

// Stats is the read-only aggregate snapshot served by the record
// service.
type Stats struct {
	TotalMembers    int            `json:"total_members"`
	ActiveMembers   int            `json:"active_members"`
	MonthlyRevenue  float64        `json:"monthly_revenue"`
	ExpiringByMonth map[string]int `json:"expiring_by_month"`
	TierBreakdown   map[Tier]int   `json:"membership_breakdown"`
}

// ExpiringIn looks up the expiring-count for a month name, defaulting
// to zero.
func (s Stats) ExpiringIn(month string) int {
	return s.ExpiringByMonth[month]
}
