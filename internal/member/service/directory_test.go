package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "github.com/nomit-kasera/the-apna-gym-admin-page/internal/errors"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/service"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/mocks"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/testutil"
)

func member(docID, name, email, phone string) domain.Member {
	return domain.Member{
		DocumentID:  docID,
		FullName:    name,
		Email:       email,
		PhoneNumber: phone,
		Tier:        domain.TierMonthly,
		StartDate:   domain.NewDate(2025, 1, 1),
		EndDate:     domain.NewDate(2025, 2, 1),
	}
}

func validDraft() domain.MemberDraft {
	return domain.MemberDraft{
		FullName:    "Amit Sharma",
		PhoneNumber: "9876543210",
		Tier:        domain.TierMonthly,
		StartDate:   domain.NewDate(2025, 1, 1),
		EndDate:     domain.NewDate(2025, 2, 1),
	}
}

func TestDirectory_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	members := []domain.Member{member("d1", "Amit", "amit@example.com", "111")}
	window := domain.PageWindow{Page: 1, PageSize: 10, Total: 42}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).Return(members, window, nil)

	err := d.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, d.ServerTotal())
	assert.False(t, d.Loading())

	rows, _ := d.Visible()
	require.Len(t, rows, 1)
	assert.Equal(t, "Amit", rows[0].Member.FullName)
}

func TestDirectory_RefreshFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	members := []domain.Member{member("d1", "Amit", "amit@example.com", "111")}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(members, domain.PageWindow{Total: 1}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(nil, domain.PageWindow{}, errors.New("backend down"))

	err := d.Refresh(context.Background())

	assert.Error(t, err)
	assert.False(t, d.Loading(), "loading flag must clear on failure")

	rows, _ := d.Visible()
	assert.Len(t, rows, 1, "failed refresh must not discard loaded members")
}

func TestDirectory_SearchFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	members := []domain.Member{
		member("d1", "Amit", "amit@example.com", "9876543210"),
		member("d2", "Priya", "priya@example.com", "9123456780"),
	}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(members, domain.PageWindow{Total: 2}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	t.Run("case-insensitive name match", func(t *testing.T) {
		d.SetQuery("am")
		rows, window := d.Visible()
		require.Len(t, rows, 1)
		assert.Equal(t, "Amit", rows[0].Member.FullName)
		assert.Equal(t, 1, window.Total)
	})

	t.Run("email match", func(t *testing.T) {
		d.SetQuery("PRIYA@")
		rows, _ := d.Visible()
		require.Len(t, rows, 1)
		assert.Equal(t, "Priya", rows[0].Member.FullName)
	})

	t.Run("phone substring match", func(t *testing.T) {
		d.SetQuery("912345")
		rows, _ := d.Visible()
		require.Len(t, rows, 1)
		assert.Equal(t, "Priya", rows[0].Member.FullName)
	})

	t.Run("no match", func(t *testing.T) {
		d.SetQuery("zz")
		rows, window := d.Visible()
		assert.Empty(t, rows)
		assert.Equal(t, 1, window.Page)
		assert.Equal(t, 1, window.TotalPages())
	})
}

func TestDirectory_QueryChangeResetsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	var members []domain.Member
	for i := 0; i < 30; i++ {
		members = append(members, member(fmt.Sprintf("d%d", i), fmt.Sprintf("Member %02d", i), "", ""))
	}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(members, domain.PageWindow{Total: 30}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	d.SetPage(3)
	assert.Equal(t, 3, d.Page())

	d.SetQuery("member")
	assert.Equal(t, 1, d.Page(), "query change resets the window to page 1")

	d.SetPageSize(5)
	d.SetPage(4)
	d.SetPageSize(10)
	assert.Equal(t, 1, d.Page(), "page-size change resets the window to page 1")
}

func TestDirectory_PaginationClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	var members []domain.Member
	for i := 0; i < 23; i++ {
		members = append(members, member(fmt.Sprintf("d%d", i), fmt.Sprintf("Member %02d", i), "", ""))
	}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(members, domain.PageWindow{Total: 23}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	_, window := d.Visible()
	assert.Equal(t, 3, window.TotalPages())

	d.SetPage(4)
	assert.Equal(t, 3, d.Page(), "page beyond the end clamps to the last page")

	rows, _ := d.Visible()
	assert.Len(t, rows, 3, "last page holds the remainder")

	d.SetPage(0)
	assert.Equal(t, 1, d.Page())
}

func TestDirectory_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: an invalid draft must never reach the backend.
	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	tests := []struct {
		name   string
		mutate func(*domain.MemberDraft)
	}{
		{"missing name", func(dr *domain.MemberDraft) { dr.FullName = "" }},
		{"missing phone", func(dr *domain.MemberDraft) { dr.PhoneNumber = "" }},
		{"missing start date", func(dr *domain.MemberDraft) { dr.StartDate = domain.Date{} }},
		{"missing end date", func(dr *domain.MemberDraft) { dr.EndDate = domain.Date{} }},
		{"missing tier", func(dr *domain.MemberDraft) { dr.Tier = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := d.Create(context.Background(), draft)
			assert.ErrorIs(t, err, apperror.ErrMissingFields)
		})
	}

	t.Run("invalid tier", func(t *testing.T) {
		draft := validDraft()
		draft.Tier = domain.Tier("weekly")

		err := d.Create(context.Background(), draft)
		assert.ErrorIs(t, err, apperror.ErrUnknownTier)
	})
}

func TestDirectory_CreateRefreshesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	draft := validDraft()
	created := member("new-doc", draft.FullName, "", draft.PhoneNumber)

	gomock.InOrder(
		mockRecords.EXPECT().AddMember(gomock.Any(), draft).Return(&created, nil),
		mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
			Return([]domain.Member{created}, domain.PageWindow{Total: 1}, nil),
	)

	err := d.Create(context.Background(), draft)

	require.NoError(t, err)
	assert.False(t, d.Loading())
}

func TestDirectory_CreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	draft := validDraft()
	mockRecords.EXPECT().AddMember(gomock.Any(), draft).Return(nil, errors.New("phone already registered"))

	err := d.Create(context.Background(), draft)

	assert.EqualError(t, err, "phone already registered")
	assert.False(t, d.Loading(), "loading flag must clear on failure")
}

func TestDirectory_UpdateRequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	err := d.Update(context.Background(), "", validDraft())

	assert.ErrorIs(t, err, apperror.ErrMissingMemberID)
}

func TestDirectory_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	draft := validDraft()
	updated := member("d1", draft.FullName, "", draft.PhoneNumber)

	gomock.InOrder(
		mockRecords.EXPECT().UpdateMember(gomock.Any(), "d1", draft).Return(&updated, nil),
		mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
			Return([]domain.Member{updated}, domain.PageWindow{Total: 1}, nil),
	)

	require.NoError(t, d.Update(context.Background(), "d1", draft))
}

func TestDirectory_DeleteFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	members := []domain.Member{
		member("d1", "Amit", "", ""),
		member("d2", "Priya", "", ""),
	}
	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return(members, domain.PageWindow{Total: 2}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	t.Run("request alone does not touch the backend", func(t *testing.T) {
		require.NoError(t, d.RequestDelete("d1"))
		assert.Equal(t, "d1", d.PendingDelete())
		// No DeleteMember expectation is registered; a call would fail.
	})

	t.Run("cancel discards the pending delete", func(t *testing.T) {
		d.CancelDelete()
		assert.Empty(t, d.PendingDelete())
	})

	t.Run("confirm without pending is rejected", func(t *testing.T) {
		err := d.ConfirmDelete(context.Background())
		assert.ErrorIs(t, err, apperror.ErrNoPendingDelete)
	})

	t.Run("confirm failure keeps the prompt open", func(t *testing.T) {
		require.NoError(t, d.RequestDelete("d1"))
		mockRecords.EXPECT().DeleteMember(gomock.Any(), "d1").Return(errors.New("backend down"))

		err := d.ConfirmDelete(context.Background())

		assert.Error(t, err)
		assert.Equal(t, "d1", d.PendingDelete())
		assert.False(t, d.Loading())
	})

	t.Run("confirm removes locally without a refetch", func(t *testing.T) {
		mockRecords.EXPECT().DeleteMember(gomock.Any(), "d1").Return(nil)

		err := d.ConfirmDelete(context.Background())

		require.NoError(t, err)
		assert.Empty(t, d.PendingDelete())

		rows, _ := d.Visible()
		require.Len(t, rows, 1)
		assert.Equal(t, "Priya", rows[0].Member.FullName)
	})

	t.Run("request with empty id is rejected", func(t *testing.T) {
		assert.ErrorIs(t, d.RequestDelete(""), apperror.ErrMissingMemberID)
	})
}

func TestDirectory_RowDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mocks.NewMockRecordService(ctrl)
	d := service.NewDirectory(mockRecords, testutil.Logger())

	// Stored end date disagrees with start + tier; the row recomputes it.
	m := member("d1", "Amit", "", "")
	m.StartDate = domain.NewDate(2025, 1, 31)
	m.EndDate = domain.NewDate(2025, 3, 3)
	m.Tier = domain.TierMonthly

	mockRecords.EXPECT().GetMembers(gomock.Any(), 1, 10).
		Return([]domain.Member{m}, domain.PageWindow{Total: 1}, nil)
	require.NoError(t, d.Refresh(context.Background()))

	rows, _ := d.Visible()
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "monthly", row.TierBadge)
	assert.Equal(t, "2025-02-28", row.RecomputedEnd.String())
	assert.Equal(t, "31 Jan 2025", row.JoinDate)
	assert.Equal(t, "28 Feb 2025", row.ExpiryDate)
	assert.Equal(t, service.StatusExpired, row.Status)
}
