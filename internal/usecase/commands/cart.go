package commands

import (
	"context"

	"masterbikes-api/internal/domain/cart"
	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/pkg/clock"
	"masterbikes-api/internal/pkg/errs"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartCommands interface {
	GetOrCreate(ctx context.Context, customerID string) (*queries.CartView, error)
	AddItem(ctx context.Context, customerID, productID string, quantity int) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*queries.CartView, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, customerID, productID string) (*queries.CartView, error)
	Abandon(ctx context.Context, cartID uuid.UUID, customerID string) error
}

type cartUseCaseImpl struct {
	cartRepo    CartRepository
	gateway     InventoryGateway
	cartQueries queries.CartQueries
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewCartUseCase(
	cartRepo CartRepository,
	gateway InventoryGateway,
	cartQueries queries.CartQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) CartCommands {
	return &cartUseCaseImpl{
		cartRepo:    cartRepo,
		gateway:     gateway,
		cartQueries: cartQueries,
		db:          db,
		clock:       clock,
	}
}

// GetOrCreate returns the customer's active cart, lazily creating an empty
// one. The partial unique index resolves concurrent first requests to a
// single winner.
func (c *cartUseCaseImpl) GetOrCreate(ctx context.Context, customerID string) (*queries.CartView, error) {
	entity, err := c.getOrCreateActive(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return c.cartQueries.GetByID(ctx, entity.ID())
}

// AddItem snapshots the product into the cart with replace semantics. Stock
// is checked against the inventory service but never reserved: two
// concurrent adds can both pass against the same remaining stock.
func (c *cartUseCaseImpl) AddItem(ctx context.Context, customerID, productID string, quantity int) (*queries.CartView, error) {
	product, err := c.gateway.GetSaleProduct(ctx, productID)
	if err != nil {
		return nil, mapInventoryErr(err, errs.ErrProductNotFound)
	}
	if product.Stock < quantity {
		return nil, errs.ErrInsufficientStock
	}

	item, err := cart.NewItem(productID, product.Name, product.Price, quantity, product.ImageURLs, product.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuantity)
	}

	var cartID uuid.UUID
	err = c.inTx(ctx, func(tx infra.DBTX) error {
		entity, err := c.getOrCreateActiveTx(ctx, tx, customerID)
		if err != nil {
			return err
		}
		entity.PutItem(item, c.clock.Now())
		if err := c.cartRepo.SaveItems(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		cartID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetByID(ctx, cartID)
}

// UpdateQuantity re-checks live stock and mutates only the matching item.
func (c *cartUseCaseImpl) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*queries.CartView, error) {
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	current, err := c.cartQueries.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !cartViewHasItem(current, productID) {
		return nil, errs.ErrProductNotInCart
	}

	product, err := c.gateway.GetSaleProduct(ctx, productID)
	if err != nil {
		return nil, mapInventoryErr(err, errs.ErrProductNotFound)
	}
	if product.Stock < quantity {
		return nil, errs.ErrInsufficientStock
	}

	var cartID uuid.UUID
	err = c.inTx(ctx, func(tx infra.DBTX) error {
		entity, err := c.cartRepo.FindActiveByCustomer(ctx, tx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCartNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := entity.ChangeQuantity(productID, quantity, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrProductNotInCart)
		}
		if err := c.cartRepo.SaveItems(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		cartID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetByID(ctx, cartID)
}

// RemoveItem is a no-op when the product is absent; an unknown
// (cartID, customerID) pair is NotFound.
func (c *cartUseCaseImpl) RemoveItem(ctx context.Context, cartID uuid.UUID, customerID, productID string) (*queries.CartView, error) {
	err := c.inTx(ctx, func(tx infra.DBTX) error {
		entity, err := c.cartRepo.FindByIDAndCustomer(ctx, tx, cartID, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCartNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entity.RemoveItem(productID, c.clock.Now())
		if err := c.cartRepo.SaveItems(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetByID(ctx, cartID)
}

// Abandon soft-retires the cart; rows are never hard-deleted.
func (c *cartUseCaseImpl) Abandon(ctx context.Context, cartID uuid.UUID, customerID string) error {
	return c.inTx(ctx, func(tx infra.DBTX) error {
		entity, err := c.cartRepo.FindByIDAndCustomer(ctx, tx, cartID, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCartNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entity.Abandon(c.clock.Now())
		if err := c.cartRepo.UpdateStatus(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartUseCaseImpl) getOrCreateActive(ctx context.Context, customerID string) (*cart.Cart, error) {
	var entity *cart.Cart
	err := c.inTx(ctx, func(tx infra.DBTX) error {
		found, err := c.getOrCreateActiveTx(ctx, tx, customerID)
		if err != nil {
			return err
		}
		entity = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *cartUseCaseImpl) getOrCreateActiveTx(ctx context.Context, tx infra.DBTX, customerID string) (*cart.Cart, error) {
	candidate := cart.NewCart(customerID, c.clock.Now())
	if err := c.cartRepo.CreateIfAbsent(ctx, tx, candidate); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Read back whichever cart won, ours or a concurrent creator's.
	entity, err := c.cartRepo.FindActiveByCustomer(ctx, tx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *cartUseCaseImpl) inTx(ctx context.Context, fn func(tx infra.DBTX) error) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollbackQuietly(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func cartViewHasItem(view *queries.CartView, productID string) bool {
	for _, item := range view.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
