package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRut        = errors.New("customer rut must not be empty")
	ErrEndBeforeStart  = errors.New("end date must not be before start date")
	ErrNegativeRate    = errors.New("daily rate cannot be negative")
	ErrNegativeDeposit = errors.New("deposit cannot be negative")
	ErrAlreadyFinished = errors.New("rental is already finished")
	ErrInvalidStatus   = errors.New("invalid rental status")
)

// Rental is a time-bounded lease of a single bike. The sequence number is a
// human-facing strictly increasing identifier assigned exactly once at
// creation, distinct from the storage key.
type Rental struct {
	id             uuid.UUID
	sequenceNumber int64
	bikeID         string
	customer       Customer
	period         Period
	quote          Quote
	paymentMethod  string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRental(
	sequenceNumber int64,
	bikeID string,
	customer Customer,
	period Period,
	quote Quote,
	paymentMethod string,
	now time.Time,
) *Rental {
	return &Rental{
		id:             uuid.New(),
		sequenceNumber: sequenceNumber,
		bikeID:         bikeID,
		customer:       customer,
		period:         period,
		quote:          quote,
		paymentMethod:  paymentMethod,
		status:         StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstructRental(
	id uuid.UUID,
	sequenceNumber int64,
	bikeID string,
	customer Customer,
	period Period,
	quote Quote,
	paymentMethod string,
	status Status,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:             id,
		sequenceNumber: sequenceNumber,
		bikeID:         bikeID,
		customer:       customer,
		period:         period,
		quote:          quote,
		paymentMethod:  paymentMethod,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Finish moves an active rental to its terminal state. Finishing twice is an
// error; the transition never reverses.
func (r *Rental) Finish(now time.Time) error {
	if r.status == StatusFinished {
		return ErrAlreadyFinished
	}
	r.status = StatusFinished
	r.updatedAt = now
	return nil
}

func (r *Rental) IsActive() bool {
	return r.status == StatusActive
}

func (r *Rental) ID() uuid.UUID         { return r.id }
func (r *Rental) SequenceNumber() int64 { return r.sequenceNumber }
func (r *Rental) BikeID() string        { return r.bikeID }
func (r *Rental) Customer() Customer    { return r.customer }
func (r *Rental) Period() Period        { return r.period }
func (r *Rental) Quote() Quote          { return r.quote }
func (r *Rental) PaymentMethod() string { return r.paymentMethod }
func (r *Rental) Status() Status        { return r.status }
func (r *Rental) CreatedAt() time.Time  { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time  { return r.updatedAt }
