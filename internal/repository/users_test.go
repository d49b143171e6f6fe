package repository

import (
	"testing"

	"github.com/collablab-dev/collablab/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	user, err := store.Register("Ada", "ada@example.com", "hunter2secret")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "credentials", user.Provider)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "hunter2secret")
}

func TestRegisterNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	user, err := store.Register("Ada", "  Ada@Example.COM ", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = store.Authenticate("ADA@example.com", "hunter2secret")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	_, err := store.Register("Ada", "ada@example.com", "hunter2secret")
	require.NoError(t, err)

	_, err = store.Register("Other Ada", "ada@example.com", "differentpass")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ada@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	registered, err := store.Register("Ada", "ada@example.com", "hunter2secret")
	require.NoError(t, err)

	user, err := store.Authenticate("ada@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = store.Authenticate("ada@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Authenticate("nobody@example.com", "hunter2secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	user, err := store.Register("Ada", "ada@example.com", "hunter2secret")
	require.NoError(t, err)

	name := "Ada Lovelace"
	updated, err := store.UpdateProfile(user.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)

	// Absent fields stay untouched.
	updated, err = store.UpdateProfile(user.ID, ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
}

func TestUpdateProfileMissingUser(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)

	name := "Nobody"
	_, err := store.UpdateProfile(999, ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}
