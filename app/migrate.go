package app

import (
	"database/sql"
	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed init.sql
var initSQL string

func RunMigrations(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	return err
}
