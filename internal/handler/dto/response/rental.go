package response

import (
	"time"

	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RentalCustomerResponse struct {
	Name  string `json:"name"`
	Rut   string `json:"rut"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RentalResponse struct {
	ID             uuid.UUID              `json:"id"`
	SequenceNumber int64                  `json:"sequence_number"`
	BikeID         string                 `json:"bike_id"`
	Customer       RentalCustomerResponse `json:"customer"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	Days           int                    `json:"days"`
	DailyRate      int                    `json:"daily_rate"`
	Deposit        int                    `json:"deposit"`
	Total          int                    `json:"total"`
	PaymentMethod  string                 `json:"payment_method"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromRentalView(view *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		ID:             view.ID,
		SequenceNumber: view.SequenceNumber,
		BikeID:         view.BikeID,
		Customer: RentalCustomerResponse{
			Name:  view.CustomerName,
			Rut:   view.CustomerRut,
			Email: view.CustomerEmail,
			Phone: view.CustomerPhone,
		},
		StartDate:     view.StartDate.Format(dateLayout),
		EndDate:       view.EndDate.Format(dateLayout),
		Days:          view.Days,
		DailyRate:     view.DailyRate,
		Deposit:       view.Deposit,
		Total:         view.Total,
		PaymentMethod: view.PaymentMethod,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

func FromRentalViews(views []*queries.RentalView) []*RentalResponse {
	out := make([]*RentalResponse, len(views))
	for i, v := range views {
		out[i] = FromRentalView(v)
	}
	return out
}
