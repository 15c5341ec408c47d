package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"comanda/internal/infrastructure/mysql"
)

// SetupTestDB opens the integration test database. Tests are skipped when no
// MySQL instance named 'comanda_test' is reachable on localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/comanda_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables bootstraps the clients/orders schema.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to create test tables: %v", err)
	}
}

// CleanupTestDB removes all rows and closes the connection. Orders go first
// because of the foreign key on client_id.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"orders", "clients"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}
