package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

func strPtr(s string) *string { return &s }

func TestClientRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	devs := NewDeveloperRepository(db.DB)
	repo := NewClientRepository(db.DB)

	_, err := devs.Upsert(ctx, "dev-1", "dev1@example.com")
	require.NoError(t, err)

	client, err := repo.Create(ctx, model.CreateClientParams{
		ID:           "RED-1234",
		Name:         "Acme",
		Email:        strPtr("ops@acme.test"),
		DeveloperIDs: []string{"dev-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "RED-1234", client.ID)

	t.Run("duplicate id is a unique violation", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateClientParams{ID: "RED-1234", Name: "Other"})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("unknown developer is a foreign key violation and rolls back", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateClientParams{ID: "RED-2000", Name: "Ghost", DeveloperIDs: []string{"nobody"}})
		require.Error(t, err)
		assert.True(t, IsForeignKeyViolation(err))

		exists, err := repo.Exists(ctx, "RED-2000")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list carries developers", func(t *testing.T) {
		clients, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		require.Len(t, clients[0].Developers, 1)
		assert.Equal(t, "dev1@example.com", clients[0].Developers[0].Email)
	})

	t.Run("assignment lookups", func(t *testing.T) {
		assigned, err := repo.IsAssigned(ctx, "RED-1234", "dev-1")
		require.NoError(t, err)
		assert.True(t, assigned)

		mine, err := repo.ListByDeveloper(ctx, "dev-1")
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})
}

func TestClientRepository_Rename(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	devs := NewDeveloperRepository(db.DB)
	repo := NewClientRepository(db.DB)
	docs := NewDocumentRepository(db.DB)
	tasks := NewTaskRepository(db.DB)

	_, err := devs.Upsert(ctx, "dev-1", "dev1@example.com")
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateClientParams{ID: "RED-1111", Name: "One", DeveloperIDs: []string{"dev-1"}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateClientParams{ID: "RED-2222", Name: "Two"})
	require.NoError(t, err)

	doc, err := docs.Create(ctx, model.CreateDocumentParams{
		ID: "6f1c7f6e-3c57-4f0a-9a53-6a1a0f6f4a10", ClientID: "RED-1111", Title: "contract.pdf",
		URL: "/api/documents/6f1c7f6e-3c57-4f0a-9a53-6a1a0f6f4a10", Size: 3, MimeType: "application/pdf",
		Content: []byte{1, 2, 3},
	})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, model.CreateTaskParams{Title: "t", DeveloperID: "dev-1", ClientID: strPtr("RED-1111")})
	require.NoError(t, err)

	t.Run("rename to taken id fails and leaves row", func(t *testing.T) {
		_, err := repo.Update(ctx, "RED-1111", model.UpdateClientParams{NewID: strPtr("RED-2222")})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))

		c, err := repo.FindByID(ctx, "RED-1111")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "One", c.Name)
	})

	t.Run("rename cascades to relations", func(t *testing.T) {
		updated, err := repo.Update(ctx, "RED-1111", model.UpdateClientParams{NewID: strPtr("acme")})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "acme", updated.ID)

		content, err := docs.FindContent(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme", content.ClientID)

		list, err := tasks.ListByClient(ctx, "acme")
		require.NoError(t, err)
		assert.Len(t, list, 1)

		assigned, err := repo.IsAssigned(ctx, "acme", "dev-1")
		require.NoError(t, err)
		assert.True(t, assigned)
	})

	t.Run("missing client returns nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, "RED-9999", model.UpdateClientParams{Name: strPtr("x")})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("developer set is replaced when given", func(t *testing.T) {
		_, err := repo.Update(ctx, "acme", model.UpdateClientParams{DeveloperIDs: []string{}})
		require.NoError(t, err)

		assigned, err := repo.IsAssigned(ctx, "acme", "dev-1")
		require.NoError(t, err)
		assert.False(t, assigned)
	})

	t.Run("delete cascades documents", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, deleted)

		content, err := docs.FindContent(ctx, doc.ID)
		require.NoError(t, err)
		assert.Nil(t, content)

		deleted, err = repo.Delete(ctx, "acme")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestDeveloperRepository_Profile(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	devs := NewDeveloperRepository(db.DB)
	clients := NewClientRepository(db.DB)
	tasks := NewTaskRepository(db.DB)

	_, err := devs.Upsert(ctx, "dev-1", "old@example.com")
	require.NoError(t, err)
	dev, err := devs.Upsert(ctx, "dev-1", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", dev.Email)

	_, err = clients.Create(ctx, model.CreateClientParams{ID: "RED-3333", Name: "C", DeveloperIDs: []string{"dev-1"}})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, model.CreateTaskParams{Title: "a", DeveloperID: "dev-1"})
	require.NoError(t, err)

	profile, err := devs.Profile(ctx, "dev-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.Counts.Clients)
	assert.Equal(t, 1, profile.Counts.Tasks)
	assert.Equal(t, 0, profile.Counts.Reports)

	missing, err := devs.Profile(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	devs := NewDeveloperRepository(db.DB)
	tasks := NewTaskRepository(db.DB)

	_, err := devs.Upsert(ctx, "dev-1", "a@example.com")
	require.NoError(t, err)
	_, err = devs.Upsert(ctx, "dev-2", "b@example.com")
	require.NoError(t, err)

	task, err := tasks.Create(ctx, model.CreateTaskParams{Title: "build", DeveloperID: "dev-1"})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)

	t.Run("other developer cannot update", func(t *testing.T) {
		updated, err := tasks.UpdateStatus(ctx, task.ID, "dev-2", model.TaskStatusCompleted)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("owner updates", func(t *testing.T) {
		updated, err := tasks.UpdateStatus(ctx, task.ID, "dev-1", model.TaskStatusInProgress)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.TaskStatusInProgress, updated.Status)
	})
}

func TestOAuthStateRepository_Consume(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	repo := NewOAuthStateRepository(db.DB)

	_, err := repo.Create(ctx, model.CreateOAuthStateParams{
		StateHash: "live", RedirectTo: "/developer", ExpiresAt: time.Now().Add(10 * time.Minute),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreateOAuthStateParams{
		StateHash: "stale", RedirectTo: "/developer", ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	t.Run("consumes once", func(t *testing.T) {
		state, err := repo.Consume(ctx, "live")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, "/developer", state.RedirectTo)

		again, err := repo.Consume(ctx, "live")
		require.NoError(t, err)
		assert.Nil(t, again)
	})

	t.Run("expired state is not consumable", func(t *testing.T) {
		state, err := repo.Consume(ctx, "stale")
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("delete expired", func(t *testing.T) {
		n, err := repo.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
