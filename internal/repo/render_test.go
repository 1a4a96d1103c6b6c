package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
	"github.com/pkordes/travel-planner/backend/testutil"
)

// newTestRepo returns a RenderRepo backed by a transaction that is rolled
// back when the test finishes. Requires TEST_DATABASE_URL.
func newTestRepo(t *testing.T) repo.RenderRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewRenderRepo(tx)
}

// renderFixture returns a successful render record. Callers override fields.
func renderFixture(started time.Time) domain.RenderRecord {
	return domain.RenderRecord{
		SessionKey: "session-1",
		FileName:   "Travel_Plan_Delhi_to_Goa_2023-12-15.pdf",
		PageCount:  5,
		Outcome:    domain.RenderDone,
		StartedAt:  started,
		FinishedAt: started.Add(300 * time.Millisecond),
	}
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// runRenderRepoSuite exercises behaviour every RenderRepo must share.
func runRenderRepoSuite(t *testing.T, newRepo func(t *testing.T) repo.RenderRepo) {
	t.Run("create assigns id", func(t *testing.T) {
		r := newRepo(t)

		got, err := r.Create(context.Background(), renderFixture(t0))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, domain.RenderDone, got.Outcome)
		assert.Equal(t, 5, got.PageCount)
		assert.True(t, got.StartedAt.Equal(t0))
	})

	t.Run("create keeps caller id", func(t *testing.T) {
		r := newRepo(t)
		rec := renderFixture(t0)
		rec.ID = uuid.New()

		got, err := r.Create(context.Background(), rec)

		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
	})

	t.Run("get by id", func(t *testing.T) {
		r := newRepo(t)
		rec := renderFixture(t0)
		rec.Outcome = domain.RenderFailed
		rec.Error = "render failed: disk full"
		rec.PageCount = 0
		created, err := r.Create(context.Background(), rec)
		require.NoError(t, err)

		got, err := r.GetByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, domain.RenderFailed, got.Outcome)
		assert.Equal(t, "render failed: disk full", got.Error)
	})

	t.Run("get by id not found", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list paged newest first", func(t *testing.T) {
		r := newRepo(t)
		for i := range 5 {
			_, err := r.Create(context.Background(), renderFixture(t0.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
		}

		page1, total, err := r.ListPaged(context.Background(), domain.PaginationParams{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, page1, 2)
		assert.True(t, page1[0].StartedAt.Equal(t0.Add(4*time.Minute)))
		assert.True(t, page1[1].StartedAt.Equal(t0.Add(3*time.Minute)))

		page3, _, err := r.ListPaged(context.Background(), domain.PaginationParams{Page: 3, Limit: 2})
		require.NoError(t, err)
		require.Len(t, page3, 1)
		assert.True(t, page3[0].StartedAt.Equal(t0))

		beyond, total, err := r.ListPaged(context.Background(), domain.PaginationParams{Page: 9, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Empty(t, beyond)
	})
}

func TestRenderRepo_Postgres(t *testing.T) {
	runRenderRepoSuite(t, newTestRepo)
}

func TestRenderRepo_Memory(t *testing.T) {
	runRenderRepoSuite(t, func(*testing.T) repo.RenderRepo { return repo.NewMemoryRenderRepo() })
}

func TestMemoryRenderRepo_RejectsDuplicateID(t *testing.T) {
	r := repo.NewMemoryRenderRepo()
	rec := renderFixture(t0)
	rec.ID = uuid.New()

	_, err := r.Create(context.Background(), rec)
	require.NoError(t, err)
	_, err = r.Create(context.Background(), rec)

	assert.Error(t, err)
}
