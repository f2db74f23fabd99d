package fetch

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arkanhaq/contenthub/internal/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllPreservesOrder(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			switch {
			case strings.Contains(sql, "programs"):
				return testkit.NewRows([]string{"id", "title"}, []any{int64(1), "Robotics"}), nil
			case strings.Contains(sql, "partners"):
				return testkit.NewRows([]string{"id", "name"},
					[]any{int64(1), "Acme"},
					[]any{int64(2), "Globex"},
				), nil
			default:
				return testkit.NewRows([]string{"id"}), nil
			}
		},
	}

	results := FetchAll(context.Background(), db, []Query{
		{Statement: "SELECT id, title FROM programs"},
		{Statement: "SELECT id FROM gallery"},
		{Statement: "SELECT id, name FROM partners"},
	})

	require.Len(t, results, 3)
	require.Len(t, results[0].Rows, 1)
	assert.Equal(t, "Robotics", results[0].Rows[0]["title"])
	assert.Empty(t, results[1].Rows)
	require.Len(t, results[2].Rows, 2)
	assert.Equal(t, "Globex", results[2].Rows[1]["name"])
}

func TestFetchAllIsolatesFailingSlot(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "gallery") {
				return nil, &pgconn.PgError{Severity: "ERROR", Code: "42P01", Message: `relation "gallery" does not exist`}
			}
			return testkit.NewRows([]string{"id"}, []any{int64(1)}), nil
		},
	}

	results := FetchAll(context.Background(), db, []Query{
		{Statement: "SELECT id FROM programs"},
		{Statement: "SELECT id FROM gallery"},
		{Statement: "SELECT id FROM partners"},
	})

	require.Len(t, results, 3)

	assert.False(t, results[0].Degraded())
	assert.Len(t, results[0].Rows, 1)

	assert.True(t, results[1].Degraded())
	require.NotNil(t, results[1].Rows, "a degraded slot still carries an empty row-set")
	assert.Empty(t, results[1].Rows)

	assert.False(t, results[2].Degraded())
	assert.Len(t, results[2].Rows, 1)
}

func TestFetchAllRecordsIterationError(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return testkit.NewRowsError(fmt.Errorf("read tcp: connection reset")), nil
		},
	}

	results := FetchAll(context.Background(), db, []Query{{Statement: "SELECT id FROM programs"}})

	require.Len(t, results, 1)
	assert.True(t, results[0].Degraded())
	assert.Empty(t, results[0].Rows)
}

func TestFetchAllEmptyBatch(t *testing.T) {
	results := FetchAll(context.Background(), &testkit.DB{}, nil)

	assert.Empty(t, results)
}

func TestFetchAllPassesArgs(t *testing.T) {
	db := &testkit.DB{}

	FetchAll(context.Background(), db, []Query{
		{Statement: "SELECT id FROM comments WHERE article_id = $1", Args: []any{int64(7)}},
	})

	require.Len(t, db.QueryCalls, 1)
	assert.Equal(t, []any{int64(7)}, db.QueryCalls[0].Args)
}
