package repository

import (
	"context"
	"testing"

	"github.com/madisvain/upcount/internal/db/dbtest"
	"github.com/madisvain/upcount/internal/project/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64 { return &i }

func TestCreateAndGetProject(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateProjectRequest{
		ID:             "p1",
		OrganizationID: "o1",
		Name:           "Website redesign",
		StartDate:      intPtr(1700000000000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Website redesign", created.Name)
	require.NotNil(t, created.StartDate)
	assert.Nil(t, created.ArchivedAt)

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ID)
}

func TestListProjectsJoinsClientName(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	dbtest.SeedClient(t, conn, "c1", "o1", "Acme")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateProjectRequest{
		ID: "p1", OrganizationID: "o1", Name: "Billed work", ClientID: strPtr("c1"),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CreateProjectRequest{
		ID: "p2", OrganizationID: "o1", Name: "Internal",
	})
	require.NoError(t, err)

	projects, err := repo.List(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Ordered by name: "Billed work" before "Internal".
	require.NotNil(t, projects[0].ClientName)
	assert.Equal(t, "Acme", *projects[0].ClientName)
	assert.Nil(t, projects[1].ClientName)
}

func TestUpdateProjectWritesOnlyPresentFields(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateProjectRequest{
		ID:             "p1",
		OrganizationID: "o1",
		Name:           "Website redesign",
		StartDate:      intPtr(1700000000000),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "p1", domain.UpdateProjectRequest{
		ArchivedAt: intPtr(1710000000000),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ArchivedAt)
	assert.Equal(t, int64(1710000000000), *updated.ArchivedAt)
	assert.Equal(t, "Website redesign", updated.Name)
	require.NotNil(t, updated.StartDate)
	assert.Equal(t, int64(1700000000000), *updated.StartDate)
}

func TestUpdateProjectBadClientReference(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateProjectRequest{
		ID: "p1", OrganizationID: "o1", Name: "Work",
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "p1", domain.UpdateProjectRequest{ClientID: strPtr("ghost")})
	require.Error(t, err)
	assert.True(t, storage.IsForeignKey(err))
}

func TestDeleteProject(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateProjectRequest{
		ID: "p1", OrganizationID: "o1", Name: "Work",
	})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, removed)
}
