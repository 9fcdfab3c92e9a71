package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

// InitPostgres opens a dedicated sqlx pool against postgres, retrying
// briefly so the service survives a database that is still starting.
// Only used when the postgres driver is configured; SQLite deployments
// share GORM's pool via WrapSQLX.
func InitPostgres(dsn string) error {
	var err error

	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
