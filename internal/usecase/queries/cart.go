package queries

import (
	"context"

	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartView, error)
	FindActiveByCustomer(ctx context.Context, customerID string) (*CartView, error)
}

type CartQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CartView, error)
	GetActiveByCustomer(ctx context.Context, customerID string) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CartView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCartNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *cartQueriesImpl) GetActiveByCustomer(ctx context.Context, customerID string) (*CartView, error) {
	view, err := q.store.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCartNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
