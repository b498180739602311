package queries

import (
	"context"

	"masterbikes-api/internal/domain/rental"
	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindByStatus(ctx context.Context, status string) ([]*RentalView, error)
	FindByCustomerRut(ctx context.Context, rut string) ([]*RentalView, error)
}

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListByStatus(ctx context.Context, status string) ([]*RentalView, error)
	ListByCustomer(ctx context.Context, rut string) ([]*RentalView, error)
	ListActive(ctx context.Context) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	store RentalReadStore
}

func NewRentalQueries(store RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{store: store}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRentalNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByStatus(ctx context.Context, status string) ([]*RentalView, error) {
	if !rental.Status(status).IsValid() {
		return nil, errs.Mark(errs.New("unknown status: "+status), errs.ErrInvalidRentalStatus)
	}
	views, err := q.store.FindByStatus(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *rentalQueriesImpl) ListActive(ctx context.Context) ([]*RentalView, error) {
	return q.ListByStatus(ctx, rental.StatusActive.String())
}

func (q *rentalQueriesImpl) ListByCustomer(ctx context.Context, rut string) ([]*RentalView, error) {
	views, err := q.store.FindByCustomerRut(ctx, rut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
