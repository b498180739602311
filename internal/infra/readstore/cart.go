package readstore

import (
	"context"
	"errors"

	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartReadStore struct {
	db infra.DBTX
}

func NewCartReadStore(db infra.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

func (r *CartReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CartView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, customer_id, status, created_at, updated_at FROM carts WHERE id = $1`, id)
	return r.scanCartWithItems(ctx, row)
}

func (r *CartReadStore) FindActiveByCustomer(ctx context.Context, customerID string) (*queries.CartView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, customer_id, status, created_at, updated_at
		 FROM carts WHERE customer_id = $1 AND status = 'active'`, customerID)
	return r.scanCartWithItems(ctx, row)
}

func (r *CartReadStore) scanCartWithItems(ctx context.Context, row pgx.Row) (*queries.CartView, error) {
	var view queries.CartView
	err := row.Scan(&view.ID, &view.CustomerID, &view.Status, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	items, err := r.loadItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items

	// Totals are derived on every read, never trusted from storage.
	total := 0
	for i := range view.Items {
		view.Items[i].Subtotal = view.Items[i].UnitPrice * view.Items[i].Quantity
		total += view.Items[i].Subtotal
	}
	view.Total = total

	return &view, nil
}

func (r *CartReadStore) loadItems(ctx context.Context, cartID uuid.UUID) ([]queries.CartItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, name, unit_price, quantity, image_urls, category
		 FROM cart_items WHERE cart_id = $1 ORDER BY position`, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart items", err)
	}
	defer rows.Close()

	items := []queries.CartItemView{}
	for rows.Next() {
		var item queries.CartItemView
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity, &item.ImageURLs, &item.Category); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}
	return items, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
