package postgres

import (
	"context"
	"database/sql"
)

// Queryer cobre o que os repositórios usam de *sql.DB e *sql.Tx, para que a mesma
// consulta rode dentro ou fora de RunInTransaction
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
	_ Conn    = (*Connection)(nil)
)
