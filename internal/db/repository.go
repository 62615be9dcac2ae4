package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the portal catalog straight from the Supabase Postgres
// database. Rows are returned as JSON objects so callers see exactly what the
// REST gateway would have returned for select=*.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository { return &Repository{pool: pool} }

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return pool, nil
}

func (r *Repository) ListCourses(ctx context.Context) ([]json.RawMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT row_to_json(c)::jsonb FROM courses c`)
	if err != nil {
		return nil, err
	}
	return collectJSON(rows)
}

func (r *Repository) ListMaterials(ctx context.Context, courseID string) ([]json.RawMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT row_to_json(m)::jsonb FROM materials m WHERE m.course_id::text = $1`, courseID)
	if err != nil {
		return nil, err
	}
	return collectJSON(rows)
}

func collectJSON(rows pgx.Rows) ([]json.RawMessage, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (json.RawMessage, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return nil, err
		}
		return json.RawMessage(raw), nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []json.RawMessage{}
	}
	return out, nil
}
