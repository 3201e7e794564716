// Package content stores library, glossary and navigator records in Postgres.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the subset of pgxpool.Pool the repositories need (ISP).
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres error codes mapped to domain errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// upsertSuffix builds the ON CONFLICT clause updating cols and reporting
// whether the row was inserted (xmax is 0 only for fresh tuples).
func upsertSuffix(cols ...string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = EXCLUDED." + c
	}
	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ") + " RETURNING (xmax = 0)"
}

// upsert executes an insert built with upsertSuffix and returns the created flag.
func upsert(ctx context.Context, q querier, b squirrel.InsertBuilder) (bool, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("build upsert: %w", err)
	}
	var created bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&created); err != nil {
		return false, err
	}
	return created, nil
}

// deleteByID removes the row with id from table, returning notFound when absent.
func deleteByID(ctx context.Context, q querier, table, id string, notFound error) error {
	sql, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// getOne runs a single-row select, mapping pgx.ErrNoRows to notFound.
func getOne(ctx context.Context, q querier, b squirrel.SelectBuilder, notFound error, dest ...any) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build select: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound
		}
		return err
	}
	return nil
}

// list runs a select and hydrates each row with scan.
func list[T any](ctx context.Context, q querier, b squirrel.SelectBuilder, scan func(pgx.Row) (T, error)) ([]T, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// pgCode returns the SQLSTATE of a Postgres error, or "".
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func nowOr(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
