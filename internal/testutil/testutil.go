package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied, through the same Open path production uses.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	h, err := db.Open(":memory:")
	require.NoError(t, err)
	return h.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
