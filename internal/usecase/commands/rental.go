package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"masterbikes-api/internal/domain/rental"
	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/infra/inventory"
	"masterbikes-api/internal/pkg/clock"
	"masterbikes-api/internal/pkg/errs"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateRentalParams struct {
	BikeID        string
	CustomerName  string
	CustomerRut   string
	CustomerEmail string
	CustomerPhone string
	StartDate     time.Time
	EndDate       time.Time
	PaymentMethod string
}

type RentalCommands interface {
	Create(ctx context.Context, params CreateRentalParams) (*queries.RentalView, error)
	Finish(ctx context.Context, id uuid.UUID) (*queries.RentalView, error)
}

type rentalUseCaseImpl struct {
	rentalRepo    RentalRepository
	sequencer     RentalSequencer
	gateway       InventoryGateway
	rentalQueries queries.RentalQueries
	db            *pgxpool.Pool
	clock         clock.Clock
}

func NewRentalUseCase(
	rentalRepo RentalRepository,
	sequencer RentalSequencer,
	gateway InventoryGateway,
	rentalQueries queries.RentalQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) RentalCommands {
	return &rentalUseCaseImpl{
		rentalRepo:    rentalRepo,
		sequencer:     sequencer,
		gateway:       gateway,
		rentalQueries: rentalQueries,
		db:            db,
		clock:         clock,
	}
}

// Create validates the request, prices the period against live bike data and
// persists a new active rental. Availability is checked, not reserved: a
// concurrent request against the same bike can also pass the check, the
// inventory service owns that reconciliation.
func (r *rentalUseCaseImpl) Create(ctx context.Context, params CreateRentalParams) (*queries.RentalView, error) {
	customer, err := rental.NewCustomer(params.CustomerName, params.CustomerRut, params.CustomerEmail, params.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerRutRequired)
	}

	period, err := rental.NewPeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRentalPeriod)
	}

	bike, err := r.gateway.GetRentalBike(ctx, params.BikeID)
	if err != nil {
		return nil, mapInventoryErr(err, errs.ErrBikeNotFound)
	}
	if !bike.Available {
		return nil, errs.ErrBikeUnavailable
	}

	quote, err := rental.NewQuote(period, bike.DailyRate, bike.Deposit)
	if err != nil {
		// Negative amounts mean the upstream answer cannot be trusted.
		return nil, errs.Mark(err, errs.ErrInventoryUnavailable)
	}

	rentalID, err := r.persistNewRental(ctx, customer, period, quote, params)
	if err != nil {
		return nil, err
	}

	view, err := r.rentalQueries.GetByID(ctx, rentalID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *rentalUseCaseImpl) persistNewRental(
	ctx context.Context,
	customer rental.Customer,
	period rental.Period,
	quote rental.Quote,
	params CreateRentalParams,
) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollbackQuietly(ctx, tx)

	seq, err := r.sequencer.Next(ctx, tx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity := rental.NewRental(seq, params.BikeID, customer, period, quote, params.PaymentMethod, r.clock.Now())
	if err := r.rentalRepo.Create(ctx, tx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (r *rentalUseCaseImpl) Finish(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollbackQuietly(ctx, tx)

	entity, err := r.rentalRepo.FindForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRentalNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.Finish(r.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrRentalAlreadyFinished)
	}

	if err := r.rentalRepo.UpdateStatus(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := r.rentalQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func mapInventoryErr(err error, notFound error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return errs.Mark(err, notFound)
	default:
		return errs.Mark(err, errs.ErrInventoryUnavailable)
	}
}

func rollbackQuietly(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
