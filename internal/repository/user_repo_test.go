package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/testutil"
)

func TestUserRepository_GetByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)
	user := testutil.TestUser(t, db)

	found, err := repo.GetByUserID(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}

func TestUserRepository_GetByUserID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	_, err := repo.GetByUserID("user_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)
	user := testutil.TestUser(t, db, testutil.WithEmail("driver@example.com"))

	found, err := repo.GetByEmail("driver@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)
	user := testutil.TestUser(t, db, testutil.WithEmail("dup@example.com"))

	dup := *user
	dup.ID = 0
	dup.UserID = user.UserID + "x"
	err := repo.Create(&dup)
	assert.Error(t, err)
}
