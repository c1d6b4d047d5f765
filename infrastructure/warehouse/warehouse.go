package warehouse

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// Conn é a visão mínima da conexão com o warehouse usada pelos repositórios
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

// Queryer expõe as operações de leitura do warehouse. Não há caminho de
// escrita: a view consultada é read-only.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// Connection encapsula a conexão com o warehouse via protocolo Postgres
type Connection struct {
	db *sql.DB
}

func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return &Connection{db: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, sql, args...)
}

func (c *Connection) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, sql, args...)
}
