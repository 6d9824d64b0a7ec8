package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/service"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/testutil"
)

func TestFileProfileStore_RoundTrip(t *testing.T) {
	fp := service.NewFileProfileStore(t.TempDir(), testutil.Logger())

	profile := &domain.Profile{
		Name:   "Nomit",
		Email:  "nomit@apnagym.com",
		Token:  "tok-abc",
		UserID: "user-1",
		Role:   "admin",
	}

	require.True(t, fp.Save(profile))

	loaded := fp.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, profile, loaded)
}

func TestFileProfileStore_LoadMissing(t *testing.T) {
	fp := service.NewFileProfileStore(t.TempDir(), testutil.Logger())

	assert.Nil(t, fp.Load())
}

func TestFileProfileStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, constant.ProfileFileName), []byte("{not json"), 0o600))

	fp := service.NewFileProfileStore(dir, testutil.Logger())

	assert.Nil(t, fp.Load(), "a corrupt record reads as no session")
}

func TestFileProfileStore_Clear(t *testing.T) {
	fp := service.NewFileProfileStore(t.TempDir(), testutil.Logger())

	require.True(t, fp.Save(&domain.Profile{Token: "tok", UserID: "u1"}))
	assert.True(t, fp.Clear())
	assert.Nil(t, fp.Load())

	// Clearing an already-empty store still succeeds.
	assert.True(t, fp.Clear())
}

func TestFileProfileStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "profile-dir")
	fp := service.NewFileProfileStore(dir, testutil.Logger())

	require.True(t, fp.Save(&domain.Profile{Token: "tok", UserID: "u1"}))
	require.NotNil(t, fp.Load())
}
