package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// recordedCall una sentencia enviada a la base con sus argumentos.
type recordedCall struct {
	sql  string
	args []any
}

// recordingQuerier Querier en memoria: guarda cada sentencia y responde con tag/err fijos.
type recordingQuerier struct {
	calls []recordedCall
	tag   pgconn.CommandTag
	err   error
}

var _ Querier = (*recordingQuerier)(nil)

func (r *recordingQuerier) record(sql string, args []any) {
	r.calls = append(r.calls, recordedCall{sql: sql, args: args})
}

func (r *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.record(sql, args)
	return r.tag, r.err
}

func (r *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.record(sql, args)
	return nil, errors.New("Query no soportado en recordingQuerier")
}

func (r *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.record(sql, args)
	return errRow{err: r.err}
}

// only devuelve la única sentencia ejecutada.
func (r *recordingQuerier) only(t *testing.T) recordedCall {
	t.Helper()
	require.Len(t, r.calls, 1)
	return r.calls[0]
}

type errRow struct {
	err error
}

func (e errRow) Scan(...any) error {
	if e.err != nil {
		return e.err
	}
	return pgx.ErrNoRows
}

func updated(n string) pgconn.CommandTag {
	return pgconn.NewCommandTag("UPDATE " + n)
}

var uniqueViolation = &pgconn.PgError{Code: "23505", ConstraintName: "cliente_publico_email_uq"}
