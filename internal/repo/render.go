// Package repo persists the render log. RenderRepo has a Postgres
// implementation and an in-memory one for deployments without a database.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RenderRepo defines the persistence operations for render records.
type RenderRepo interface {
	// Create inserts a record and returns it with its id populated.
	// A zero ID is generated by the store.
	Create(ctx context.Context, rec domain.RenderRecord) (domain.RenderRecord, error)

	// GetByID returns domain.ErrNotFound if no record has that id.
	GetByID(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error)

	// ListPaged returns one page of records, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error)
}

type pgRenderRepo struct {
	db db
}

// NewRenderRepo constructs a RenderRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRenderRepo(db db) RenderRepo {
	return &pgRenderRepo{db: db}
}

const renderColumns = `id, session_key, file_name, page_count, outcome, error, started_at, finished_at`

func (r *pgRenderRepo) Create(ctx context.Context, rec domain.RenderRecord) (domain.RenderRecord, error) {
	const q = `
		INSERT INTO render_log (id, session_key, file_name, page_count, outcome, error, started_at, finished_at)
		VALUES (COALESCE(@id, gen_random_uuid()), @session_key, @file_name, @page_count, @outcome, @error, @started_at, @finished_at)
		RETURNING ` + renderColumns

	var id *uuid.UUID
	if rec.ID != uuid.Nil {
		id = &rec.ID
	}
	args := pgx.NamedArgs{
		"id":          id, // nil becomes NULL
		"session_key": rec.SessionKey,
		"file_name":   rec.FileName,
		"page_count":  rec.PageCount,
		"outcome":     string(rec.Outcome),
		"error":       rec.Error,
		"started_at":  rec.StartedAt,
		"finished_at": rec.FinishedAt,
	}

	result, err := scanRender(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RenderRecord{}, fmt.Errorf("repo.RenderRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRenderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error) {
	const q = `SELECT ` + renderColumns + ` FROM render_log WHERE id = @id`

	result, err := scanRender(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.RenderRecord{}, fmt.Errorf("repo.RenderRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRenderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM render_log`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.RenderRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + renderColumns + `
		FROM render_log
		ORDER BY started_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RenderRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var out []domain.RenderRecord
	for rows.Next() {
		rec, err := scanRender(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.RenderRepo.ListPaged: scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.RenderRepo.ListPaged: rows: %w", err)
	}
	return out, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRender(s scanner) (domain.RenderRecord, error) {
	var (
		rec     domain.RenderRecord
		id      pgtype.UUID
		outcome string
	)
	err := s.Scan(&id, &rec.SessionKey, &rec.FileName, &rec.PageCount, &outcome, &rec.Error, &rec.StartedAt, &rec.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RenderRecord{}, domain.ErrNotFound
		}
		return domain.RenderRecord{}, err
	}
	rec.ID = uuid.UUID(id.Bytes)
	rec.Outcome = domain.RenderOutcome(outcome)
	return rec, nil
}
