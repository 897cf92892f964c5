package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/washlane/washlane-backend/pkg/config"
)

func TestNewSQLiteFallback(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: "file::memory:?cache=shared"}

	client, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewPostgresRequiresDSN(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverPostgres}
	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite}
	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: "file::memory:"}
	client, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.DB().Exec(`CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT)`).Error)

	boom := errTest("boom")
	err = client.WithTx(context.Background(), func(tx *gorm.DB) error {
		require.NoError(t, tx.Exec(`INSERT INTO things (name) VALUES ('x')`).Error)
		return boom
	})
	require.ErrorIs(t, err, error(boom))

	var count int64
	require.NoError(t, client.DB().Table("things").Count(&count).Error)
	assert.Zero(t, count)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil, ""))
	assert.True(t, IsUniqueViolation(errTest("duplicate key value violates unique constraint \"users_phone_key\""), ""))
	assert.True(t, IsUniqueViolation(errTest("UNIQUE constraint failed: users.phone"), ""))
	assert.True(t, IsUniqueViolation(errTest("constraint users_phone_key broken"), "users_phone_key"))
	assert.False(t, IsUniqueViolation(errTest("connection refused"), ""))
}

type errTest string

func (e errTest) Error() string { return string(e) }
