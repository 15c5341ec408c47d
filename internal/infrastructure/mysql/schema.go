package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the clients and orders tables when they do not exist.
// The unique email index and the client_id foreign key are the store-level
// enforcement points for client uniqueness and order referential integrity.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			email VARCHAR(150) NOT NULL,
			phone VARCHAR(30) NOT NULL,
			UNIQUE KEY uq_clients_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			client_id INT UNSIGNED NOT NULL,
			dish_name VARCHAR(150) NOT NULL,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
			FOREIGN KEY (client_id) REFERENCES clients(id),
			INDEX idx_orders_client_created (client_id, created_at)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	return nil
}
