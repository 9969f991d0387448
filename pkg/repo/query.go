package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Tx is the subset of pgx.Tx repositories rely on. Both pgx.Tx and
// *pgxpool.Pool satisfy it, so reads can run straight off the pool while
// writes go through an explicit transaction.
type Tx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Join concatenates non-empty query fragments with a single space.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}

// JoinWhere builds a WHERE clause ANDing the given conditions. Returns an
// empty string when no conditions are provided.
func JoinWhere(conditions ...string) string {
	out := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(out, " AND ")
}

// FormatLimitOffset renders LIMIT/OFFSET fragments, omitting either when
// non-positive.
func FormatLimitOffset(limit, offset int) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	if limit > 0 {
		return fmt.Sprintf("LIMIT %d", limit)
	}
	if offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return ""
}
