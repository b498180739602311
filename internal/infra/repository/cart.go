package repository

import (
	"context"
	"errors"
	"time"

	"masterbikes-api/internal/domain/cart"
	"masterbikes-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// CreateIfAbsent inserts the candidate cart unless the customer already has
// an active one. The partial unique index on (customer_id) WHERE status =
// 'active' decides the race between concurrent first requests; the loser's
// insert is a silent no-op and both callers read back the same winner.
func (r *CartRepository) CreateIfAbsent(ctx context.Context, db infra.DBTX, c *cart.Cart) error {
	_, err := db.Exec(ctx, `
		INSERT INTO carts (id, customer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (customer_id) WHERE status = 'active' DO NOTHING`,
		c.ID(), c.CustomerID(), c.Status().String(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create cart", err)
	}
	return nil
}

func (r *CartRepository) FindActiveByCustomer(ctx context.Context, db infra.DBTX, customerID string) (*cart.Cart, error) {
	row := db.QueryRow(ctx, `
		SELECT id, customer_id, status, created_at, updated_at
		FROM carts WHERE customer_id = $1 AND status = 'active' FOR UPDATE`, customerID)
	return r.scanCart(ctx, db, row)
}

func (r *CartRepository) FindByIDAndCustomer(ctx context.Context, db infra.DBTX, id uuid.UUID, customerID string) (*cart.Cart, error) {
	row := db.QueryRow(ctx, `
		SELECT id, customer_id, status, created_at, updated_at
		FROM carts WHERE id = $1 AND customer_id = $2 FOR UPDATE`, id, customerID)
	return r.scanCart(ctx, db, row)
}

// SaveItems rewrites the cart's item rows to match the entity. Replace-all
// keeps the replace semantics of PutItem trivially correct and the row count
// per cart is small.
func (r *CartRepository) SaveItems(ctx context.Context, db infra.DBTX, c *cart.Cart) error {
	if _, err := db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear cart items", err)
	}

	for pos, item := range c.Items() {
		_, err := db.Exec(ctx, `
			INSERT INTO cart_items (cart_id, product_id, name, unit_price, quantity, image_urls, category, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID(), item.ProductID(), item.Name(), item.UnitPrice(), item.Quantity(),
			item.ImageURLs(), item.Category(), pos,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to save cart item", err)
		}
	}

	if _, err := db.Exec(ctx, `UPDATE carts SET updated_at = $2 WHERE id = $1`, c.ID(), c.UpdatedAt()); err != nil {
		return infra.WrapRepoErr("failed to touch cart", err)
	}
	return nil
}

func (r *CartRepository) UpdateStatus(ctx context.Context, db infra.DBTX, c *cart.Cart) error {
	tag, err := db.Exec(ctx,
		`UPDATE carts SET status = $2, updated_at = $3 WHERE id = $1`,
		c.ID(), c.Status().String(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update cart status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) scanCart(ctx context.Context, db infra.DBTX, row pgx.Row) (*cart.Cart, error) {
	var (
		id                   uuid.UUID
		customerID, status   string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &customerID, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	items, err := r.loadItems(ctx, db, id)
	if err != nil {
		return nil, err
	}

	return cart.ReconstructCart(id, customerID, items, cart.Status(status), createdAt, updatedAt), nil
}

func (r *CartRepository) loadItems(ctx context.Context, db infra.DBTX, cartID uuid.UUID) ([]cart.Item, error) {
	rows, err := db.Query(ctx, `
		SELECT product_id, name, unit_price, quantity, image_urls, category
		FROM cart_items WHERE cart_id = $1 ORDER BY position`, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart items", err)
	}
	defer rows.Close()

	items := []cart.Item{}
	for rows.Next() {
		var (
			productID, name, category string
			unitPrice, quantity       int
			imageURLs                 []string
		)
		if err := rows.Scan(&productID, &name, &unitPrice, &quantity, &imageURLs, &category); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		items = append(items, cart.ReconstructItem(productID, name, unitPrice, quantity, imageURLs, category))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}
	return items, nil
}
