package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

type memRenderRepo struct {
	mu      sync.RWMutex
	records []domain.RenderRecord
	byID    map[uuid.UUID]int
}

// NewMemoryRenderRepo returns a RenderRepo held in process memory. Records
// are lost on restart.
func NewMemoryRenderRepo() RenderRepo {
	return &memRenderRepo{byID: make(map[uuid.UUID]int)}
}

func (r *memRenderRepo) Create(_ context.Context, rec domain.RenderRecord) (domain.RenderRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[rec.ID]; dup {
		return domain.RenderRecord{}, fmt.Errorf("repo.RenderRepo.Create: duplicate id %s", rec.ID)
	}
	r.byID[rec.ID] = len(r.records)
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *memRenderRepo) GetByID(_ context.Context, id uuid.UUID) (domain.RenderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return domain.RenderRecord{}, fmt.Errorf("repo.RenderRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.records[i], nil
}

func (r *memRenderRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
	r.mu.RLock()
	sorted := slices.Clone(r.records)
	r.mu.RUnlock()

	// Same order as the Postgres query: newest first, id as tie-breaker.
	slices.SortFunc(sorted, func(a, b domain.RenderRecord) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	total := int64(len(sorted))
	start := min(p.Offset(), len(sorted))
	end := min(start+p.Limit, len(sorted))
	return sorted[start:end], total, nil
}
