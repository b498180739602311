package repository

import (
	"context"
	"errors"
	"time"

	"masterbikes-api/internal/domain/rental"
	"masterbikes-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

func (r *RentalRepository) Create(ctx context.Context, db infra.DBTX, ren *rental.Rental) error {
	_, err := db.Exec(ctx, `
		INSERT INTO rentals (
			id, sequence_number, bike_id,
			customer_name, customer_rut, customer_email, customer_phone,
			start_date, end_date, days, daily_rate, deposit, total,
			payment_method, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		ren.ID(), ren.SequenceNumber(), ren.BikeID(),
		ren.Customer().Name(), ren.Customer().Rut(), ren.Customer().Email(), ren.Customer().Phone(),
		ren.Period().Start(), ren.Period().End(),
		ren.Quote().Days(), ren.Quote().DailyRate(), ren.Quote().Deposit(), ren.Quote().Total(),
		ren.PaymentMethod(), ren.Status().String(), ren.CreatedAt(), ren.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("rental sequence number already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

// FindForUpdate loads a rental and locks the row so the finish transition is
// a single read-modify-write.
func (r *RentalRepository) FindForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*rental.Rental, error) {
	row := db.QueryRow(ctx, `
		SELECT id, sequence_number, bike_id,
		       customer_name, customer_rut, customer_email, customer_phone,
		       start_date, end_date, days, daily_rate, deposit, total,
		       payment_method, status, created_at, updated_at
		FROM rentals WHERE id = $1 FOR UPDATE`, id)

	var (
		rid                      uuid.UUID
		seq                      int64
		bikeID                   string
		name, rut, email, phone  string
		start, end               time.Time
		days, rate, dep, total   int
		payment, status          string
		createdAt, updatedAt     time.Time
	)
	err := row.Scan(
		&rid, &seq, &bikeID,
		&name, &rut, &email, &phone,
		&start, &end, &days, &rate, &dep, &total,
		&payment, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental for update", err)
	}

	customer, err := rental.NewCustomer(name, rut, email, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rental has invalid customer", err)
	}
	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rental has invalid period", err)
	}

	return rental.ReconstructRental(
		rid, seq, bikeID, customer, period,
		rental.ReconstructQuote(days, rate, dep, total),
		payment, rental.Status(status), createdAt, updatedAt,
	), nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, db infra.DBTX, ren *rental.Rental) error {
	tag, err := db.Exec(ctx,
		`UPDATE rentals SET status = $2, updated_at = $3 WHERE id = $1`,
		ren.ID(), ren.Status().String(), ren.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update rental status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
