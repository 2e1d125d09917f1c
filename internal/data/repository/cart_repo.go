package repository

import (
	"context"
	"fmt"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CartRepository persists per-customer carts. Mutations are single atomic
// statements, so concurrent requests for the same customer serialize at the
// row level instead of losing updates in a read-modify-write cycle.
type CartRepository interface {
	// AddItem inserts the item with quantity 1 or, when the service is
	// already in the cart, increments its quantity by 1. Title and price
	// keep their originally stored values (first write wins). The cart row
	// is created lazily.
	AddItem(ctx context.Context, customerID uuid.UUID, item entity.CartItem) error

	// RemoveItem deletes the item if present; absent cart or item is not an
	// error. updated_at is refreshed only when a cart exists.
	RemoveItem(ctx context.Context, customerID uuid.UUID, serviceID string) error

	// SetItemQuantity sets the quantity exactly. No-op when the cart or
	// item does not exist. Callers must handle quantity <= 0 as removal.
	SetItemQuantity(ctx context.Context, customerID uuid.UUID, serviceID string, quantity int) error

	// FindByCustomerID returns the cart with its items in insertion order,
	// or nil when the customer has no cart.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// DeleteByCustomerID removes the cart and its items. Idempotent.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) AddItem(ctx context.Context, customerID uuid.UUID, item entity.CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin add item: %w", err)
	}
	defer tx.Rollback(ctx)

	cartQuery := `
		INSERT INTO carts (customer_id, updated_at)
		VALUES ($1, NOW())
		ON CONFLICT (customer_id) DO UPDATE SET updated_at = NOW()
	`

	if _, err := tx.Exec(ctx, cartQuery, customerID); err != nil {
		r.log.Error("Failed to upsert cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("upsert cart for %s: %w", customerID.String(), err)
	}

	// Increment on duplicate, keep the stored title/price. The whole merge
	// happens inside the database, so a double-tap add cannot lose one of
	// the increments.
	itemQuery := `
		INSERT INTO cart_items (customer_id, service_id, title, price, quantity, added_at)
		VALUES ($1, $2, $3, $4, 1, NOW())
		ON CONFLICT (customer_id, service_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
	`

	if _, err := tx.Exec(ctx, itemQuery, customerID, item.ServiceID, item.Title, item.Price); err != nil {
		r.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("service_id", item.ServiceID),
		)
		return fmt.Errorf("add item %s to cart %s: %w", item.ServiceID, customerID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit add item: %w", err)
	}

	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, customerID uuid.UUID, serviceID string) error {
	query := `DELETE FROM cart_items WHERE customer_id = $1 AND service_id = $2`

	_, err := r.db.Exec(ctx, query, customerID, serviceID)
	if err != nil {
		r.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("service_id", serviceID),
		)
		return fmt.Errorf("remove item %s from cart %s: %w", serviceID, customerID.String(), err)
	}

	// Refreshes updated_at only when a cart row exists
	touchQuery := `UPDATE carts SET updated_at = NOW() WHERE customer_id = $1`
	if _, err := r.db.Exec(ctx, touchQuery, customerID); err != nil {
		r.log.Error("Failed to touch cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("touch cart %s: %w", customerID.String(), err)
	}

	return nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, customerID uuid.UUID, serviceID string, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE customer_id = $1 AND service_id = $2
	`

	result, err := r.db.Exec(ctx, query, customerID, serviceID, quantity)
	if err != nil {
		r.log.Error("Failed to set cart item quantity",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("service_id", serviceID),
			zap.Int("quantity", quantity),
		)
		return fmt.Errorf("set quantity of %s in cart %s: %w", serviceID, customerID.String(), err)
	}

	// Absent cart or item is a no-op, not an error
	if result.RowsAffected() == 0 {
		return nil
	}

	touchQuery := `UPDATE carts SET updated_at = NOW() WHERE customer_id = $1`
	if _, err := r.db.Exec(ctx, touchQuery, customerID); err != nil {
		r.log.Error("Failed to touch cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("touch cart %s: %w", customerID.String(), err)
	}

	return nil
}

func (r *cartRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cartQuery := `SELECT customer_id, updated_at FROM carts WHERE customer_id = $1`

	var cart entity.Cart
	err := r.db.QueryRow(ctx, cartQuery, customerID).Scan(
		&cart.CustomerID,
		&cart.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find cart for %s: %w", customerID.String(), err)
	}

	itemsQuery := `
		SELECT service_id, title, price, quantity
		FROM cart_items
		WHERE customer_id = $1
		ORDER BY added_at, service_id
	`

	rows, err := r.db.Query(ctx, itemsQuery, customerID)
	if err != nil {
		r.log.Error("Failed to find cart items",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find cart items for %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.CartItem
		err := rows.Scan(
			&item.ServiceID,
			&item.Title,
			&item.Price,
			&item.Quantity,
		)
		if err != nil {
			r.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return &cart, nil
}

func (r *cartRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	query := `DELETE FROM carts WHERE customer_id = $1`

	_, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to delete cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("delete cart for %s: %w", customerID.String(), err)
	}

	return nil
}
