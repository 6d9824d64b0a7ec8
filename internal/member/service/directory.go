package service

//go:generate mockgen -destination=../../mocks/mock_record_service.go -package=mocks github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain RecordService

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
	apperror "github.com/nomit-kasera/the-apna-gym-admin-page/internal/errors"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

// Row is a display row derived on every read from the stored member
// fields; none of it is persisted. The end date is recomputed from the
// start date and tier rather than trusting the stored value blindly.
type Row struct {
	Member        domain.Member `json:"member"`
	TierBadge     string        `json:"tier_badge"`
	Status        DisplayStatus `json:"status"`
	JoinDate      string        `json:"join_date"`
	ExpiryDate    string        `json:"expiry_date"`
	RecomputedEnd domain.Date   `json:"computed_end_date"`
}

// Directory maintains the visible page of members, the search query and
// the pagination window, and mediates every mutation. One server page is
// loaded at a time; the search filter and the window operate on that
// loaded page only.
type Directory struct {
	records domain.RecordService
	log     *slog.Logger
	now     func() time.Time

	mu            sync.Mutex
	members       []domain.Member
	serverTotal   int
	query         string
	page          int
	pageSize      int
	pendingDelete string
	loading       bool
}

func NewDirectory(records domain.RecordService, log *slog.Logger) *Directory {
	return &Directory{
		records:  records,
		log:      log,
		now:      time.Now,
		page:     constant.DefaultPage,
		pageSize: constant.DefaultPageSize,
	}
}

// Refresh fetches exactly one page from the record service and replaces
// the loaded state with the response. On failure local state is left
// unchanged. The loading flag covers the call on both paths.
func (d *Directory) Refresh(ctx context.Context) error {
	d.setLoading(true)
	defer d.setLoading(false)

	d.mu.Lock()
	page, pageSize := d.page, d.pageSize
	d.mu.Unlock()

	members, window, err := d.records.GetMembers(ctx, page, pageSize)
	if err != nil {
		d.log.Warn("member list refresh failed", "page", page, "error", err)
		return err
	}

	d.mu.Lock()
	d.members = members
	d.serverTotal = window.Total
	d.mu.Unlock()

	return nil
}

// SetQuery updates the search query and resets the window to page 1.
// The filter is case-insensitive over name and email plus a substring
// match on phone, and never widens past the loaded page.
func (d *Directory) SetQuery(q string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if q != d.query {
		d.query = q
		d.page = 1
	}
}

// SetPageSize changes the rows-per-page and resets to page 1. The caller
// refreshes afterwards; the new size applies to both the server fetch
// and the local window.
func (d *Directory) SetPageSize(n int) {
	if n < 1 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if n != d.pageSize {
		d.pageSize = n
		d.page = 1
	}
}

// SetPage moves the window, clamped to [1, totalPages] of the filtered
// rows.
func (d *Directory) SetPage(p int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	window := domain.PageWindow{Page: p, PageSize: d.pageSize, Total: len(d.filteredLocked())}
	d.page = window.Clamp().Page
}

func (d *Directory) Page() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.page
}

func (d *Directory) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.loading
}

// ServerTotal is the backend-reported row count for the whole
// collection, as opposed to the locally filtered total.
func (d *Directory) ServerTotal() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.serverTotal
}

// Visible returns the current window of display rows over the filtered
// members, plus the window itself (total = filtered count).
func (d *Directory) Visible() ([]Row, domain.PageWindow) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := d.filteredLocked()
	window := domain.PageWindow{Page: d.page, PageSize: d.pageSize, Total: len(filtered)}.Clamp()

	start := (window.Page - 1) * window.PageSize
	end := start + window.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	today := d.now()
	rows := make([]Row, 0, end-start)
	for _, m := range filtered[start:end] {
		rows = append(rows, d.buildRow(m, today))
	}

	return rows, window
}

func (d *Directory) filteredLocked() []domain.Member {
	if d.query == "" {
		return d.members
	}

	q := strings.ToLower(d.query)
	filtered := make([]domain.Member, 0, len(d.members))
	for _, m := range d.members {
		if strings.Contains(strings.ToLower(m.FullName), q) ||
			strings.Contains(strings.ToLower(m.Email), q) ||
			strings.Contains(m.PhoneNumber, d.query) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

func (d *Directory) buildRow(m domain.Member, today time.Time) Row {
	end := m.EndDate
	if recomputed, err := ComputeEndDate(m.StartDate.Time, m.Tier); err == nil && !m.StartDate.IsZero() {
		end = domain.Date{Time: recomputed}
	}

	return Row{
		Member:        m,
		TierBadge:     string(m.Tier),
		Status:        ComputeStatus(end.Time, today),
		JoinDate:      formatDate(m.StartDate),
		ExpiryDate:    formatDate(end),
		RecomputedEnd: end,
	}
}

func formatDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}

	return d.Format("02 Jan 2006")
}

// Create validates the draft, submits it, and on success refreshes the
// full list from the server (the authoritative source of truth). On
// failure nothing local changes so the form stays populated.
func (d *Directory) Create(ctx context.Context, draft domain.MemberDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	d.setLoading(true)
	created, err := d.records.AddMember(ctx, draft)
	d.setLoading(false)
	if err != nil {
		return err
	}

	d.log.Info("member created", "document_id", created.DocumentID)

	return d.Refresh(ctx)
}

// Update requires an existing member identifier and behaves like Create
// otherwise.
func (d *Directory) Update(ctx context.Context, documentID string, patch domain.MemberDraft) error {
	if documentID == "" {
		return apperror.ErrMissingMemberID
	}
	if err := validateDraft(patch); err != nil {
		return err
	}

	d.setLoading(true)
	_, err := d.records.UpdateMember(ctx, documentID, patch)
	d.setLoading(false)
	if err != nil {
		return err
	}

	d.log.Info("member updated", "document_id", documentID)

	return d.Refresh(ctx)
}

// RequestDelete opens the confirmation step for a member. Nothing is
// sent to the backend until ConfirmDelete.
func (d *Directory) RequestDelete(documentID string) error {
	if documentID == "" {
		return apperror.ErrMissingMemberID
	}

	d.mu.Lock()
	d.pendingDelete = documentID
	d.mu.Unlock()

	return nil
}

// CancelDelete discards the pending confirmation.
func (d *Directory) CancelDelete() {
	d.mu.Lock()
	d.pendingDelete = ""
	d.mu.Unlock()
}

// PendingDelete reports which member, if any, awaits confirmation.
func (d *Directory) PendingDelete() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pendingDelete
}

// ConfirmDelete performs the pending delete. On success the member is
// removed from local state without a refetch and the prompt closes; on
// failure the prompt stays open.
func (d *Directory) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	documentID := d.pendingDelete
	d.mu.Unlock()

	if documentID == "" {
		return apperror.ErrNoPendingDelete
	}

	d.setLoading(true)
	defer d.setLoading(false)

	if err := d.records.DeleteMember(ctx, documentID); err != nil {
		return err
	}

	d.mu.Lock()
	kept := d.members[:0]
	for _, m := range d.members {
		if m.DocumentID != documentID {
			kept = append(kept, m)
		}
	}
	d.members = kept
	d.pendingDelete = ""
	d.mu.Unlock()

	d.log.Info("member deleted", "document_id", documentID)

	return nil
}

func (d *Directory) setLoading(v bool) {
	d.mu.Lock()
	d.loading = v
	d.mu.Unlock()
}

func validateDraft(draft domain.MemberDraft) error {
	if draft.FullName == "" || draft.PhoneNumber == "" ||
		draft.StartDate.IsZero() || draft.EndDate.IsZero() || draft.Tier == "" {
		return apperror.ErrMissingFields
	}
	if !draft.Tier.Valid() {
		return apperror.ErrUnknownTier
	}

	return nil
}
