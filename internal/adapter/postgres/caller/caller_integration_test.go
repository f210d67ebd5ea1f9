//go:build integration

package caller_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgassignment "github.com/alanyang/caller-hub/internal/adapter/postgres/assignment"
	pgcaller "github.com/alanyang/caller-hub/internal/adapter/postgres/caller"
	pgemployee "github.com/alanyang/caller-hub/internal/adapter/postgres/employee"
	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
	"github.com/alanyang/caller-hub/internal/testutil"
)

func createCaller(t *testing.T, ctx context.Context, repo *pgcaller.Repository, batchID *uuid.UUID) domaincaller.Caller {
	t.Helper()
	suffix := uuid.New().String()[:8]
	created, err := repo.Create(ctx, domaincaller.New("caller-"+suffix, suffix+"@callers.test", "+1555"+suffix, batchID))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Delete(context.Background(), created.ID) })
	return created
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCallerRepo_CreateGetDelete(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)

	created := createCaller(t, ctx, repo, nil)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, domaincaller.StatusActive, got.Status)
	assert.Nil(t, got.AssignedTo)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domainassignment.ErrCallerNotFound)
}

func TestCallerRepo_DuplicateContact(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)

	created := createCaller(t, ctx, repo, nil)

	_, err := repo.Create(ctx, domaincaller.New("other name", created.Email, "+1999"+uuid.New().String()[:8], nil))
	assert.ErrorIs(t, err, domaincaller.ErrDuplicateContact)

	_, err = repo.Create(ctx, domaincaller.New("other name", uuid.New().String()[:8]+"@callers.test", created.Phone, nil))
	assert.ErrorIs(t, err, domaincaller.ErrDuplicateContact)
}

func TestCallerRepo_ListUnassignedFIFO(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)
	batchID := uuid.New()

	first := createCaller(t, ctx, repo, &batchID)
	second := createCaller(t, ctx, repo, &batchID)
	third := createCaller(t, ctx, repo, &batchID)

	unassigned, err := repo.ListUnassigned(ctx, 100)
	require.NoError(t, err)

	// Other tests share the pool, so filter to this batch before asserting
	// creation order.
	var mine []uuid.UUID
	for _, c := range unassigned {
		if c.BatchID != nil && *c.BatchID == batchID {
			mine = append(mine, c.ID)
		}
	}
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, mine)
}

func TestCallerRepo_ListUnassignedHonorsLimit(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)
	batchID := uuid.New()

	for range 3 {
		createCaller(t, ctx, repo, &batchID)
	}

	unassigned, err := repo.ListUnassigned(ctx, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(unassigned), 2)
}

func TestCallerRepo_CompleteClearsAssignment(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)
	employeeRepo := pgemployee.New(pool)
	assignRepo := pgassignment.New(pool)

	c := createCaller(t, ctx, repo, nil)
	suffix := uuid.New().String()[:8]
	e, err := employeeRepo.Create(ctx, domainemployee.New("emp-"+suffix, suffix+"@employees.test", "+1666"+suffix, domainemployee.RoleEmployee))
	require.NoError(t, err)
	t.Cleanup(func() { _ = employeeRepo.Delete(context.Background(), e.ID) })

	require.NoError(t, assignRepo.AssignCallerToEmployee(ctx, c.ID, e.ID, uuid.New(), domainassignment.MethodManual))
	require.NoError(t, repo.Complete(ctx, c.ID))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domaincaller.StatusInactive, got.Status)
	assert.Nil(t, got.AssignedTo)
	assert.Nil(t, got.AssignedAt)

	// A completed caller never re-enters the pool.
	unassigned, err := repo.ListUnassigned(ctx, 1000)
	require.NoError(t, err)
	for _, u := range unassigned {
		assert.NotEqual(t, c.ID, u.ID)
	}
}

func TestCallerRepo_CompleteUnknownCaller(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)

	err := repo.Complete(ctx, uuid.New())
	assert.ErrorIs(t, err, domainassignment.ErrCallerNotFound)
}

func TestCallerRepo_ListByBatch(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgcaller.New(pool)
	batchID := uuid.New()

	createCaller(t, ctx, repo, &batchID)
	createCaller(t, ctx, repo, &batchID)
	createCaller(t, ctx, repo, nil)

	got, err := repo.List(ctx, domaincaller.ListFilters{BatchID: &batchID})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
