//go:build unit || e2e

package builder

import (
	"time"

	domrental "masterbikes-api/internal/domain/rental"
	reqdto "masterbikes-api/internal/handler/dto/request"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	SequenceNumber int64
	BikeID         string
	CustomerName   string
	CustomerRut    string
	CustomerEmail  string
	CustomerPhone  string
	StartDate      time.Time
	EndDate        time.Time
	DailyRate      int
	Deposit        int
	PaymentMethod  string
	Now            time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		SequenceNumber: 1,
		BikeID:         "bike-mtb-29",
		CustomerName:   "Ana Soto",
		CustomerRut:    "12.345.678-9",
		CustomerEmail:  "ana.soto@example.com",
		CustomerPhone:  "+56911112222",
		StartDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DailyRate:      15000,
		Deposit:        50000,
		PaymentMethod:  "debit",
		Now:            time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) WithPeriod(start, end time.Time) *RentalBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

// Build methods
func (b *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	customer, err := domrental.NewCustomer(b.CustomerName, b.CustomerRut, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	period, err := domrental.NewPeriod(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	quote, err := domrental.NewQuote(period, b.DailyRate, b.Deposit)
	if err != nil {
		return nil, err
	}
	return domrental.NewRental(b.SequenceNumber, b.BikeID, customer, period, quote, b.PaymentMethod, b.Now), nil
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		BikeID:        b.BikeID,
		CustomerName:  b.CustomerName,
		CustomerRut:   b.CustomerRut,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		StartDate:     b.StartDate.Format("2006-01-02"),
		EndDate:       b.EndDate.Format("2006-01-02"),
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	days := int(b.EndDate.Sub(b.StartDate)/(24*time.Hour)) + 1
	return &queries.RentalView{
		ID:             uuid.New(),
		SequenceNumber: b.SequenceNumber,
		BikeID:         b.BikeID,
		CustomerName:   b.CustomerName,
		CustomerRut:    b.CustomerRut,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Days:           days,
		DailyRate:      b.DailyRate,
		Deposit:        b.Deposit,
		Total:          days * b.DailyRate,
		PaymentMethod:  b.PaymentMethod,
		Status:         domrental.StatusActive.String(),
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}
