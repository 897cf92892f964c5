package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgdb "github.com/washlane/washlane-backend/pkg/db"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateAndFindByPhone(t *testing.T) {
	db := setupUsersTestDB(t)
	r := NewRepository(db)

	created, err := r.Create(context.Background(), CreateUserDTO{
		Name:         "Ana",
		Phone:        "555-1",
		Email:        "a@x.com",
		PasswordHash: "$argon2id$...",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := r.FindByPhone(context.Background(), "555-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ana", found.Name)
}

func TestFindByPhoneMissing(t *testing.T) {
	db := setupUsersTestDB(t)
	r := NewRepository(db)

	_, err := r.FindByPhone(context.Background(), "000-0")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateDuplicatePhoneFailsAtStore(t *testing.T) {
	db := setupUsersTestDB(t)
	r := NewRepository(db)

	_, err := r.Create(context.Background(), CreateUserDTO{Name: "Ana", Phone: "555-1", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = r.Create(context.Background(), CreateUserDTO{Name: "Bob", Phone: "555-1", Email: "b@x.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, pkgdb.IsUniqueViolation(err, ""))
}

func TestFindByID(t *testing.T) {
	db := setupUsersTestDB(t)
	r := NewRepository(db)

	created, err := r.Create(context.Background(), CreateUserDTO{Name: "Ana", Phone: "555-1", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	found, err := r.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-1", found.Phone)

	_, err = r.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
