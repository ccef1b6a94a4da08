package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// import the postgres driver to register it with the database/sql package.
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id         BIGSERIAL PRIMARY KEY,
	turn       TEXT NOT NULL DEFAULT '',
	winner     TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS game_pits (
	game_id BIGINT NOT NULL REFERENCES games (id) ON DELETE CASCADE,
	idx     INTEGER NOT NULL,
	stones  INTEGER NOT NULL CHECK (stones >= 0),
	PRIMARY KEY (game_id, idx)
);`

type PostgresStorage struct {
	Connection *sql.DB
}

type PostgresOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgresStorage(ctx context.Context, dsn string, opts PostgresOptions) (*PostgresStorage, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &PostgresStorage{Connection: conn}, nil
}

// Init - creates the tables when they are missing.
func (that *PostgresStorage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't create tables: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Close() error {
	return that.Connection.Close()
}
