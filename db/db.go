package db

import (
	"context"
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db   *sql.DB
	once sync.Once
)

// Init opens the sqlite catalog database.
func Init(databaseURL string) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite3", databaseURL)
		if err != nil {
			log.Printf("[db] Failed to open database: %v", err)
			return
		}

		if err = db.Ping(); err != nil {
			log.Printf("[db] Failed to ping database: %v", err)
			return
		}

		// sqlite serialises writers; one connection avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
		log.Printf("[db] Database initialized: %s", databaseURL)
	})
	return err
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

func Ping(ctx context.Context) error {
	return Get().PingContext(ctx)
}

func QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Get().QueryContext(ctx, query, args...)
}

func QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return Get().QueryRowContext(ctx, query, args...)
}

func ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Get().ExecContext(ctx, query, args...)
}
