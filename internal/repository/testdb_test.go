package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rishi-ann/redlix-portal/internal/database"
)

// setupTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.Connect(context.Background(), url)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Migrate(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		TRUNCATE oauth_states, developer_identities, client_documents, project_requests, contact_inquiries,
			project_reports, tasks, client_developers, clients, developer_credentials, developers
		CASCADE
	`)
	require.NoError(t, err)

	return db
}
