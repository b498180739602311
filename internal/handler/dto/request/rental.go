package request

import (
	"time"

	"masterbikes-api/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type CreateRentalRequest struct {
	BikeID        string `json:"bike_id" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerRut   string `json:"customer_rut" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	StartDate     string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" binding:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method"`
}

func (r CreateRentalRequest) ToParams() (commands.CreateRentalParams, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateRentalParams{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateRentalParams{}, err
	}
	return commands.CreateRentalParams{
		BikeID:        r.BikeID,
		CustomerName:  r.CustomerName,
		CustomerRut:   r.CustomerRut,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		StartDate:     start,
		EndDate:       end,
		PaymentMethod: r.PaymentMethod,
	}, nil
}
