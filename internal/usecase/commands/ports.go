package commands

import (
	"context"

	"masterbikes-api/internal/domain/cart"
	"masterbikes-api/internal/domain/rental"
	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/infra/inventory"

	"github.com/google/uuid"
)

type RentalRepository interface {
	Create(ctx context.Context, db infra.DBTX, ren *rental.Rental) error
	FindForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*rental.Rental, error)
	UpdateStatus(ctx context.Context, db infra.DBTX, ren *rental.Rental) error
}

// RentalSequencer issues strictly increasing, store-unique sequence numbers.
type RentalSequencer interface {
	Next(ctx context.Context, db infra.DBTX) (int64, error)
}

type CartRepository interface {
	CreateIfAbsent(ctx context.Context, db infra.DBTX, c *cart.Cart) error
	FindActiveByCustomer(ctx context.Context, db infra.DBTX, customerID string) (*cart.Cart, error)
	FindByIDAndCustomer(ctx context.Context, db infra.DBTX, id uuid.UUID, customerID string) (*cart.Cart, error)
	SaveItems(ctx context.Context, db infra.DBTX, c *cart.Cart) error
	UpdateStatus(ctx context.Context, db infra.DBTX, c *cart.Cart) error
}

// InventoryGateway is the read-only view of the inventory service this core
// depends on. It never writes: stock is checked here, never reserved.
type InventoryGateway interface {
	GetRentalBike(ctx context.Context, id string) (*inventory.Bike, error)
	GetSaleProduct(ctx context.Context, id string) (*inventory.Product, error)
}
