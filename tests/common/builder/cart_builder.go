//go:build unit || e2e

package builder

import (
	"time"

	domcart "masterbikes-api/internal/domain/cart"
	reqdto "masterbikes-api/internal/handler/dto/request"
	"masterbikes-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBuilder struct {
	CartID     uuid.UUID
	CustomerID string
	ProductID  string
	Name       string
	UnitPrice  int
	Quantity   int
	ImageURLs  []string
	Category   string
	Now        time.Time
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		CartID:     uuid.New(),
		CustomerID: "customer-42",
		ProductID:  "prod-helmet-m",
		Name:       "Casco MTB talla M",
		UnitPrice:  25000,
		Quantity:   2,
		ImageURLs:  []string{"https://cdn.example.com/helmet-m.jpg"},
		Category:   "accesorios",
		Now:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CartBuilder) BuildDomain() (*domcart.Cart, error) {
	c := domcart.NewCart(b.CustomerID, b.Now)
	item, err := b.BuildItem()
	if err != nil {
		return nil, err
	}
	c.PutItem(item, b.Now)
	return c, nil
}

func (b *CartBuilder) BuildEmptyDomain() *domcart.Cart {
	return domcart.NewCart(b.CustomerID, b.Now)
}

func (b *CartBuilder) BuildItem() (domcart.Item, error) {
	return domcart.NewItem(b.ProductID, b.Name, b.UnitPrice, b.Quantity, b.ImageURLs, b.Category)
}

func (b *CartBuilder) BuildAddItemRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
	}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	subtotal := b.UnitPrice * b.Quantity
	return &queries.CartView{
		ID:         b.CartID,
		CustomerID: b.CustomerID,
		Status:     domcart.StatusActive.String(),
		Items: []queries.CartItemView{
			{
				ProductID: b.ProductID,
				Name:      b.Name,
				UnitPrice: b.UnitPrice,
				Quantity:  b.Quantity,
				Subtotal:  subtotal,
				ImageURLs: b.ImageURLs,
				Category:  b.Category,
			},
		},
		Total:     subtotal,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *CartBuilder) BuildEmptyView() *queries.CartView {
	return &queries.CartView{
		ID:         b.CartID,
		CustomerID: b.CustomerID,
		Status:     domcart.StatusActive.String(),
		Items:      []queries.CartItemView{},
		Total:      0,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}
