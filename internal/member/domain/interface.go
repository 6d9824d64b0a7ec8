package domain

import "context"

// RecordService is the typed boundary to the remote record-keeping
// backend for member data. Implementations attach the session bearer
// token and normalize backend error payloads; no retries.
type RecordService interface {
	GetMembers(ctx context.Context, page, pageSize int) ([]Member, PageWindow, error)
	AddMember(ctx context.Context, draft MemberDraft) (*Member, error)
	UpdateMember(ctx context.Context, documentID string, patch MemberDraft) (*Member, error)
	DeleteMember(ctx context.Context, documentID string) error
	GetStats(ctx context.Context) (*Stats, error)
	GetLatestRegistrations(ctx context.Context) ([]Member, error)
}
