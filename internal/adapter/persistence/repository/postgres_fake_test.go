package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

// fakePG keeps rows in the column order the repositories select them. Timestamps are
// cut to microseconds like TIMESTAMPTZ.
type fakePG struct {
	claims      map[string][]any
	settlements map[string][]any
	execs       []string
}

var _ pgConn = (*fakePG)(nil)

func newFakePG() *fakePG {
	return &fakePG{claims: map[string][]any{}, settlements: map[string][]any{}}
}

func pgTime(v any) time.Time {
	return v.(time.Time).Truncate(time.Microsecond)
}

func (f *fakePG) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	switch {
	case strings.HasPrefix(sql, "INSERT INTO claims"):
		id := args[0].(string)
		if _, ok := f.claims[id]; ok {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}
		}
		f.claims[id] = claimRow(args)
		return pgconn.NewCommandTag("INSERT 0 1"), nil

	case strings.HasPrefix(sql, "UPDATE claims"):
		id := args[0].(string)
		row, ok := f.claims[id]
		if !ok || row[15].(int64) != args[17].(int64) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		f.claims[id] = claimRow(args[:17])
		return pgconn.NewCommandTag("UPDATE 1"), nil

	case strings.HasPrefix(sql, "INSERT INTO settlements"):
		id := args[0].(string)
		if _, ok := f.settlements[id]; ok {
			return pgconn.NewCommandTag("INSERT 0 0"), nil
		}
		row := append([]any(nil), args...)
		row[6] = pgTime(row[6])
		f.settlements[id] = row
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unexpected exec: %s", sql)
}

// claimRow drops search_text from the insert arguments to get the selected columns.
func claimRow(args []any) []any {
	row := make([]any, 0, len(args)-1)
	row = append(row, args[:13]...)
	row = append(row, pgTime(args[14]), pgTime(args[15]), args[16])
	return row
}

func (f *fakePG) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected query: %s", sql)
}

func (f *fakePG) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT EXISTS"):
		_, ok := f.claims[args[0].(string)]
		return fakeRow{values: []any{ok}}
	case strings.Contains(sql, "FROM claims WHERE id"):
		if row, ok := f.claims[args[0].(string)]; ok {
			return fakeRow{values: row}
		}
	case strings.Contains(sql, "FROM settlements WHERE claim_id"):
		if row, ok := f.settlements[args[0].(string)]; ok {
			return fakeRow{values: row}
		}
	default:
		return fakeRow{err: errors.New("unexpected query row: " + sql)}
	}
	return fakeRow{err: pgx.ErrNoRows}
}
