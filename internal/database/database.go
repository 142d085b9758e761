// Package database centralises sqlx connection helpers for the domain→slug
// lookup table.  The driver is go-sql-driver/mysql, which also works with
// MariaDB when configured for the MySQL wire protocol.
//
// Open pings the database before returning so bootstrap fails fast; callers
// Close() the returned *sqlx.DB when no longer needed.
package database

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns a *sqlx.DB sized for the routing lookup workload: lookups
// are single-row point reads, so the pool stays small.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
