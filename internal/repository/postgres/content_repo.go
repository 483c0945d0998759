package postgres

import (
	"context"
	"database/sql"
	"errors"

	"sitecms/internal/domain"
)

type contentRepository[T domain.Record] struct {
	DB      *sql.DB
	table   Table[T]
	queries tableQueries
}

// NewContentRepository returns a repository for the records of one table.
func NewContentRepository[T domain.Record](db *sql.DB, table Table[T]) domain.ContentRepository[T] {
	return &contentRepository[T]{
		DB:      db,
		table:   table,
		queries: buildQueries(table),
	}
}

func (r *contentRepository[T]) Create(ctx context.Context, rec T) error {
	var id int64
	if err := r.DB.QueryRowContext(ctx, r.queries.insert, r.table.Values(rec)...).Scan(&id); err != nil {
		return err
	}
	rec.SetID(id)
	return nil
}

func (r *contentRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	rec := r.table.New()
	err := r.DB.QueryRowContext(ctx, r.queries.get, id).Scan(r.table.Dest(rec)...)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

func (r *contentRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.DB.QueryContext(ctx, r.queries.list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []T
	for rows.Next() {
		rec := r.table.New()
		if err := rows.Scan(r.table.Dest(rec)...); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

func (r *contentRepository[T]) Update(ctx context.Context, rec T) error {
	args := append(r.table.Values(rec), rec.GetID())
	result, err := r.DB.ExecContext(ctx, r.queries.update, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepository[T]) Delete(ctx context.Context, id int64) (T, error) {
	rec := r.table.New()
	err := r.DB.QueryRowContext(ctx, r.queries.delete, id).Scan(r.table.Dest(rec)...)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}
