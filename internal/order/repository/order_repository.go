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

// MySQL error number for a foreign key constraint failure on insert.
const fkViolationErrNo = 1452

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists a new order. The foreign key on client_id backs the
// client-existence check, so an order can never reference a client that
// never existed even when the caller's pre-check raced a registration.
func (r *MySQLOrderRepository) Insert(ctx context.Context, order domain.Order) (*domain.Order, error) {
	query := `INSERT INTO orders (client_id, dish_name, notes, status) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, order.ClientID, order.DishName, order.Notes, order.Status)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == fkViolationErrNo {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("client with id %d not found", order.ClientID))
		}
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted order id: %w", err)
	}

	// Re-read so the caller gets the store-assigned created_at.
	return r.FindByID(ctx, uint(id))
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, client_id, dish_name, notes, status, created_at
		FROM orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.ClientID, &order.DishName, &order.Notes,
		&order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) FindByClientID(ctx context.Context, clientID uint) ([]domain.Order, error) {
	query := `
		SELECT id, client_id, dish_name, notes, status, created_at
		FROM orders
		WHERE client_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by client id: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.ClientID, &order.DishName, &order.Notes,
			&order.Status, &order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading orders: %w", err)
	}

	return orders, nil
}

// UpdateStatusFrom applies one conditional transition: the write only lands
// when the persisted status still equals expected. It reports false when no
// row matched, either because the order does not exist or because a
// concurrent call already moved it past expected. The row lock taken by the
// UPDATE serializes concurrent transitions on the same order.
func (r *MySQLOrderRepository) UpdateStatusFrom(ctx context.Context, id uint, expected, next domain.Status) (bool, error) {
	query := `UPDATE orders SET status = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, next, id, expected)
	if err != nil {
		return false, fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}
