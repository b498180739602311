package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID             uuid.UUID `json:"id"`
	SequenceNumber int64     `json:"sequence_number"`
	BikeID         string    `json:"bike_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerRut    string    `json:"customer_rut"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Days           int       `json:"days"`
	DailyRate      int       `json:"daily_rate"`
	Deposit        int       `json:"deposit"`
	Total          int       `json:"total"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CartItemView carries the stored snapshot plus its derived subtotal; the
// subtotal is computed when the view is built, never read from storage.
type CartItemView struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	UnitPrice int      `json:"unit_price"`
	Quantity  int      `json:"quantity"`
	Subtotal  int      `json:"subtotal"`
	ImageURLs []string `json:"image_urls"`
	Category  string   `json:"category"`
}

type CartView struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID string         `json:"customer_id"`
	Status     string         `json:"status"`
	Items      []CartItemView `json:"items"`
	Total      int            `json:"total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
