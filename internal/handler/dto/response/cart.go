package response

import (
	"time"

	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	UnitPrice int      `json:"unit_price"`
	Quantity  int      `json:"quantity"`
	Subtotal  int      `json:"subtotal"`
	ImageURLs []string `json:"image_urls"`
	Category  string   `json:"category"`
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID string             `json:"customer_id"`
	Status     string             `json:"status"`
	Items      []CartItemResponse `json:"items"`
	Total      int                `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
			ImageURLs: item.ImageURLs,
			Category:  item.Category,
		}
	}
	return &CartResponse{
		ID:         view.ID,
		CustomerID: view.CustomerID,
		Status:     view.Status,
		Items:      items,
		Total:      view.Total,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}
