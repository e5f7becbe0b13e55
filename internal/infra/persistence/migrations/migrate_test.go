package migrations

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_NilDB(t *testing.T) {
	err := Up(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestUp_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock

	err = Up(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestFiles_Ordered(t *testing.T) {
	files, err := Files()

	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_posts.sql"}, files)
}
