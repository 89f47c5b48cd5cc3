package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Driver do Postgres
)

// OpenDB só valida a string de conexão e configura o pool; não conecta.
func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS leads_seguros (
	id           UUID PRIMARY KEY,
	nome         TEXT NOT NULL,
	email        TEXT NOT NULL,
	telefone     TEXT NOT NULL,
	tipo_veiculo TEXT NOT NULL CHECK (tipo_veiculo IN ('carro', 'moto')),
	modelo       TEXT,
	ano          INTEGER,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS leads_seguros_created_at_idx ON leads_seguros (created_at DESC);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
