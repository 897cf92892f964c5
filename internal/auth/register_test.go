package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/washlane/washlane-backend/pkg/config"
	pkgerrors "github.com/washlane/washlane-backend/pkg/errors"
	"github.com/washlane/washlane-backend/pkg/security"
)

type gormTxRunner struct {
	conn *gorm.DB
}

func (r *gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.conn.WithContext(ctx).Transaction(fn)
}

func setupRegisterTestDB(t *testing.T) *gorm.DB {
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

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	db := setupRegisterTestDB(t)
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             &gormTxRunner{conn: db},
		PasswordConfig: testPasswordConfig(),
	})
	require.NoError(t, err)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "  Aria Wash  ",
		Phone:    " 5550001111 ",
		Email:    "aria@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aria Wash", user.Name)
	assert.Equal(t, "5550001111", user.Phone)
	assert.NotEmpty(t, user.ID)

	var hash string
	require.NoError(t, db.Raw("SELECT password_hash FROM users WHERE phone = ?", "5550001111").Scan(&hash).Error)
	ok, err := security.VerifyPassword("hunter22", hash)
	require.NoError(t, err)
	assert.True(t, ok, "stored hash should verify against the original password")
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	db := setupRegisterTestDB(t)
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             &gormTxRunner{conn: db},
		PasswordConfig: testPasswordConfig(),
	})
	require.NoError(t, err)

	req := RegisterRequest{
		Name:     "First",
		Phone:    "5550002222",
		Email:    "first@example.com",
		Password: "password1",
	}
	_, err = svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.Name = "Second"
	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM users WHERE phone = ?", "5550002222").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	db := setupRegisterTestDB(t)
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             &gormTxRunner{conn: db},
		PasswordConfig: testPasswordConfig(),
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name:     "No Phone",
		Password: "password1",
	})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}
