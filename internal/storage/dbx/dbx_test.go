package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE items (name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestWithTxCommit(t *testing.T) {
	db := openMemDB(t)
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO items(name) VALUES ('a')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, count(t, db))
}

func TestWithTxRollbackOnError(t *testing.T) {
	db := openMemDB(t)
	boom := errors.New("boom")
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items(name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, count(t, db))
}

func TestWithTxRollbackOnPanic(t *testing.T) {
	db := openMemDB(t)
	require.Panics(t, func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO items(name) VALUES ('a')`)
			panic("kaboom")
		})
	})
	require.Equal(t, 0, count(t, db))
}

func TestTimeRoundTripSortsLexically(t *testing.T) {
	early := time.Date(2026, 1, 2, 3, 4, 5, 100, time.UTC)
	late := early.Add(time.Millisecond)

	a, b := FormatTime(early), FormatTime(late)
	require.Less(t, a, b)

	parsed, err := ParseTime(a)
	require.NoError(t, err)
	require.True(t, parsed.Equal(early))

	rfc, err := ParseTime("2026-01-02T03:04:05Z")
	require.NoError(t, err)
	require.Equal(t, 2026, rfc.Year())
}
