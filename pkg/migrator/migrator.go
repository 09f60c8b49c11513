// Package migrator applies the SQL files under migrations/ with goose.
package migrator

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

const DefaultDir = "./migrations"

func open(connString string) (*sql.DB, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging db: %w", err)
	}
	return db, nil
}

func Up(connString, dir string) error {
	db, err := open(connString)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration only.
func Down(connString, dir string) error {
	db, err := open(connString)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.Down(db, dir); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}
	return nil
}

func Status(connString, dir string) error {
	db, err := open(connString)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.Status(db, dir)
}
