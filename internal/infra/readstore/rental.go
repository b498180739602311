package readstore

import (
	"context"
	"time"

	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rentalViewColumns = `
	id, sequence_number, bike_id,
	customer_name, customer_rut, customer_email, customer_phone,
	start_date, end_date, days, daily_rate, deposit, total,
	payment_method, status, created_at, updated_at`

type RentalReadStore struct {
	db infra.DBTX
}

func NewRentalReadStore(db infra.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+rentalViewColumns+` FROM rentals WHERE id = $1`, id)

	view, err := scanRentalView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by id", err)
	}
	return view, nil
}

func (r *RentalReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+rentalViewColumns+` FROM rentals WHERE status = $1 ORDER BY sequence_number`, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by status", err)
	}
	defer rows.Close()

	return collectRentalViews(rows)
}

func (r *RentalReadStore) FindByCustomerRut(ctx context.Context, rut string) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+rentalViewColumns+` FROM rentals WHERE customer_rut = $1 ORDER BY sequence_number`, rut)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by customer", err)
	}
	defer rows.Close()

	return collectRentalViews(rows)
}

func collectRentalViews(rows pgx.Rows) ([]*queries.RentalView, error) {
	result := []*queries.RentalView{}
	for rows.Next() {
		view, err := scanRentalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental rows", err)
	}
	return result, nil
}

func scanRentalView(row pgx.Row) (*queries.RentalView, error) {
	var (
		v          queries.RentalView
		start, end time.Time
	)
	err := row.Scan(
		&v.ID, &v.SequenceNumber, &v.BikeID,
		&v.CustomerName, &v.CustomerRut, &v.CustomerEmail, &v.CustomerPhone,
		&start, &end, &v.Days, &v.DailyRate, &v.Deposit, &v.Total,
		&v.PaymentMethod, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.StartDate = start
	v.EndDate = end
	return &v, nil
}
