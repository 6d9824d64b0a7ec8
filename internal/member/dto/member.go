package dto

import (
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
)

// MemberInput is the writable member payload accepted on create and
// update.
type MemberInput struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	MembershipType string `json:"membership_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// ToDraft parses the raw input into a domain draft. Tier and date
// parsing errors surface here; required-field checks belong to the
// directory controller.
func (in MemberInput) ToDraft() (domain.MemberDraft, error) {
	draft := domain.MemberDraft{
		FullName:    in.FullName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	if in.MembershipType != "" {
		tier, err := domain.ParseTier(in.MembershipType)
		if err != nil {
			return domain.MemberDraft{}, err
		}
		draft.Tier = tier
	}

	if in.StartDate != "" {
		start, err := domain.ParseDate(in.StartDate)
		if err != nil {
			return domain.MemberDraft{}, err
		}
		draft.StartDate = start
	}

	if in.EndDate != "" {
		end, err := domain.ParseDate(in.EndDate)
		if err != nil {
			return domain.MemberDraft{}, err
		}
		draft.EndDate = end
	}

	return draft, nil
}

// StatsOutput is the dashboard snapshot plus the derived current-month
// expiring count.
type StatsOutput struct {
	domain.Stats
	ExpiringThisMonth int `json:"expiring_this_month"`
}
