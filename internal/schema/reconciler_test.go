package schema

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arkanhaq/contenthub/internal/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// newSchemaDB fakes the query primitive over an in-memory schema: a map of
// table -> column -> stored value. Existence checks consult the map and
// ALTER statements mutate it, so repeated reconciliation runs observe their
// own effects the way a live database would.
func newSchemaDB(tables map[string]map[string]string) *testkit.DB {
	db := &testkit.DB{}

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		table, _ := args[0].(string)
		column, _ := args[1].(string)
		if _, ok := tables[table][column]; ok {
			return testkit.NewRows([]string{"exists"}, []any{1}), nil
		}
		return testkit.NewRows([]string{"exists"}), nil
	}

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		switch {
		case strings.Contains(sql, " RENAME COLUMN "):
			table, rest := splitAlter(sql, " RENAME COLUMN ")
			from, to, _ := strings.Cut(rest, " TO ")
			cols := tables[table]
			if _, ok := cols[unquote(to)]; ok {
				return pgconn.CommandTag{}, duplicateColumnError(unquote(to))
			}
			cols[unquote(to)] = cols[unquote(from)]
			delete(cols, unquote(from))
			return pgconn.CommandTag{}, nil

		case strings.Contains(sql, " ADD COLUMN "):
			table, rest := splitAlter(sql, " ADD COLUMN ")
			column := unquote(strings.SplitN(rest, " ", 2)[0])
			if _, ok := tables[table][column]; ok {
				return pgconn.CommandTag{}, duplicateColumnError(column)
			}
			tables[table][column] = ""
			return pgconn.CommandTag{}, nil
		}
		return pgconn.CommandTag{}, fmt.Errorf("unexpected statement: %s", sql)
	}

	return db
}

func splitAlter(sql, keyword string) (table, rest string) {
	left, right, _ := strings.Cut(sql, keyword)
	return unquote(strings.TrimPrefix(left, "ALTER TABLE ")), right
}

func unquote(identifier string) string {
	return strings.Trim(strings.TrimSpace(identifier), `"`)
}

func duplicateColumnError(column string) error {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "42701",
		Message:  fmt.Sprintf("column %q already exists", column),
	}
}

func avatarDirective() Directive {
	return Directive{Table: "users", Legacy: "avatarUrl", Current: "avatar_url", Definition: "VARCHAR(255)"}
}

func TestReconcileRenamesWhenLegacyIsSoleSource(t *testing.T) {
	tables := map[string]map[string]string{"users": {"avatarUrl": "x"}}
	db := newSchemaDB(tables)

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusRenamed, outcome.Status)
	require.Len(t, db.ExecCalls, 1)
	assert.Equal(t, `ALTER TABLE "users" RENAME COLUMN "avatarUrl" TO "avatar_url"`, db.ExecCalls[0].SQL)

	assert.Equal(t, "x", tables["users"]["avatar_url"], "data must survive the rename")
	_, legacyStillThere := tables["users"]["avatarUrl"]
	assert.False(t, legacyStillThere)
}

func TestReconcileAddsWhenBothAbsent(t *testing.T) {
	tables := map[string]map[string]string{"users": {}}
	db := newSchemaDB(tables)

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusAdded, outcome.Status)
	require.Len(t, db.ExecCalls, 1)
	assert.Equal(t, `ALTER TABLE "users" ADD COLUMN "avatar_url" VARCHAR(255)`, db.ExecCalls[0].SQL)
}

func TestReconcileNoopWhenCurrentPresent(t *testing.T) {
	tables := map[string]map[string]string{"users": {"avatar_url": "y"}}
	db := newSchemaDB(tables)

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusNoop, outcome.Status)
	assert.Empty(t, db.ExecCalls)
}

func TestReconcileRefusesToMergeWhenBothPresent(t *testing.T) {
	tables := map[string]map[string]string{"users": {"avatarUrl": "stale", "avatar_url": "live"}}
	db := newSchemaDB(tables)

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusNoop, outcome.Status)
	assert.Empty(t, db.ExecCalls, "conflicting columns must be left untouched")
	assert.Equal(t, "stale", tables["users"]["avatarUrl"])
	assert.Equal(t, "live", tables["users"]["avatar_url"])
}

func TestReconcileSelfRenameGuard(t *testing.T) {
	d := Directive{Table: "users", Legacy: "avatar_url", Current: "avatar_url", Definition: "VARCHAR(255)"}

	tables := map[string]map[string]string{"users": {}}
	db := newSchemaDB(tables)
	outcome := Reconcile(context.Background(), db, d)
	assert.Equal(t, StatusAdded, outcome.Status)

	tables = map[string]map[string]string{"users": {"avatar_url": "x"}}
	db = newSchemaDB(tables)
	outcome = Reconcile(context.Background(), db, d)
	assert.Equal(t, StatusNoop, outcome.Status)

	for _, call := range db.ExecCalls {
		assert.NotContains(t, call.SQL, "RENAME", "a self-rename must never be issued")
	}
}

func TestReconcileDegradedOnLostCreationRace(t *testing.T) {
	tables := map[string]map[string]string{"users": {}}
	db := newSchemaDB(tables)

	// Another instance creates the column between the existence check and
	// the ALTER.
	innerExec := db.ExecFn
	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		tables["users"]["avatar_url"] = ""
		return innerExec(ctx, sql, args...)
	}

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusDegraded, outcome.Status)
	assert.Contains(t, outcome.Reason, "lost schema race")
	assert.Len(t, db.ExecCalls, 1, "a lost race is abandoned, not retried")

	// The next run sees the new state and no-ops.
	db.ExecFn = innerExec
	assert.Equal(t, StatusNoop, Reconcile(context.Background(), db, avatarDirective()).Status)
}

func TestReconcileDegradedOnExistenceCheckError(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	outcome := Reconcile(context.Background(), db, avatarDirective())

	assert.Equal(t, StatusDegraded, outcome.Status)
	assert.Contains(t, outcome.Reason, "connection reset")
	assert.Empty(t, db.ExecCalls)
}

func TestReconcileAllConvergesFromAnyInitialState(t *testing.T) {
	initialStates := []map[string]string{
		{},
		{"avatarUrl": "x", "verified": "1"},
		{"avatar_url": "y"},
		{"avatarUrl": "stale", "avatar_url": "live"},
	}

	directives := []Directive{
		avatarDirective(),
		{Table: "users", Legacy: "verified", Current: "is_verified", Definition: "SMALLINT NOT NULL DEFAULT 0"},
	}

	for i, initial := range initialStates {
		tables := map[string]map[string]string{"users": initial}
		db := newSchemaDB(tables)
		logger := testLogger()

		first := ReconcileAll(context.Background(), db, logger, directives)
		require.Len(t, first, len(directives))

		second := ReconcileAll(context.Background(), db, logger, directives)
		for _, outcome := range second {
			assert.Equal(t, StatusNoop, outcome.Status, "state %d: second run must be a no-op", i)
		}

		_, hasCurrent := tables["users"]["avatar_url"]
		assert.True(t, hasCurrent, "state %d: current column must exist", i)
	}
}

func articleDirectives() []Directive {
	var chain []Directive
	for _, d := range Directives() {
		if d.Table == "articles" {
			chain = append(chain, d)
		}
	}
	return chain
}

func TestReconcileRenameOnlyDirectiveNeverAdds(t *testing.T) {
	tables := map[string]map[string]string{"articles": {}}
	db := newSchemaDB(tables)

	outcome := Reconcile(context.Background(), db, Directive{
		Table: "articles", Legacy: "thumbnail", Current: "cover_image",
	})

	assert.Equal(t, StatusNoop, outcome.Status)
	assert.Empty(t, db.ExecCalls)
}

func TestReconcileAliasChainPreservesData(t *testing.T) {
	for _, legacy := range []string{"coverImage", "imageUrl", "thumbnail"} {
		tables := map[string]map[string]string{"articles": {legacy: "pic.png"}}
		db := newSchemaDB(tables)

		ReconcileAll(context.Background(), db, testLogger(), articleDirectives())

		assert.Equal(t, "pic.png", tables["articles"]["cover_image"], "data under %s must survive", legacy)
		_, stillThere := tables["articles"][legacy]
		assert.False(t, stillThere, "%s must have been renamed, not copied", legacy)
	}
}

func TestReconcileAliasChainAddsWhenNoAliasHeldData(t *testing.T) {
	tables := map[string]map[string]string{"articles": {}}
	db := newSchemaDB(tables)

	ReconcileAll(context.Background(), db, testLogger(), articleDirectives())

	_, ok := tables["articles"]["cover_image"]
	assert.True(t, ok)
	require.Len(t, db.ExecCalls, 1)
	assert.Contains(t, db.ExecCalls[0].SQL, "ADD COLUMN")
}

func TestDirectivesTargetCurrentConvention(t *testing.T) {
	creatable := make(map[string]bool)
	for _, d := range Directives() {
		assert.NotEmpty(t, d.Table)
		assert.NotEmpty(t, d.Current)
		assert.NotEqual(t, d.Legacy, d.Current)
		if d.Definition == "" {
			assert.NotEmpty(t, d.Legacy, "a directive without a definition must name a legacy column")
		} else {
			creatable[d.Table+"."+d.Current] = true
		}
	}

	// Every targeted column must have one directive able to create it, so
	// reconciliation converges from an empty table.
	for _, d := range Directives() {
		assert.True(t, creatable[d.Table+"."+d.Current], "%s.%s has no creating directive", d.Table, d.Current)
	}
}
