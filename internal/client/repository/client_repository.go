package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
)

// MySQL error number for a duplicate entry on a unique index.
const duplicateEntryErrNo = 1062

type MySQLClientRepository struct {
	db *sql.DB
}

func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

// Insert persists a new client in a single statement. The unique index on
// email is the enforcement point for client uniqueness: two concurrent
// inserts with the same email are serialized by the store and exactly one
// succeeds, the other surfaces as a ConflictError.
func (r *MySQLClientRepository) Insert(ctx context.Context, client domain.Client) (*domain.Client, error) {
	query := `INSERT INTO clients (name, email, phone) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, client.Name, client.Email, client.Phone)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNo {
			return nil, apperrors.NewConflictError(fmt.Sprintf("client with email %s already exists", client.Email))
		}
		return nil, fmt.Errorf("inserting client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted client id: %w", err)
	}

	client.ID = uint(id)
	return &client, nil
}

func (r *MySQLClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, name, email, phone FROM clients ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading clients: %w", err)
	}

	return clients, nil
}

func (r *MySQLClientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	query := `SELECT 1 FROM clients WHERE id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking client existence: %w", err)
	}

	return true, nil
}
