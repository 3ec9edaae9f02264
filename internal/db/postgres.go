package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ConnectPostgres opens a standalone sqlx connection through lib/pq, retrying while the
// database comes up. Tools that only read reports use it instead of GORM.
func ConnectPostgres(dsn string, attempts int) (*sqlx.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < attempts; i++ {
		conn, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return conn, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", attempts, err)
}
