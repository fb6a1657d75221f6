package database

import (
	"log"
	"time"

	"zoo-ticketing/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return db
}

// Migrate creates the order tables on startup. Line items reference their
// order so the two can only be read back together.
func Migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS school_orders (
		id UUID PRIMARY KEY,
		school_name TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL,
		invoice_number TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS school_order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES school_orders (id),
		type TEXT NOT NULL,
		quantity INT NOT NULL,
		price NUMERIC(12,2) NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}
