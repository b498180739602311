package request

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// Quantity bounds are validated in the usecase so a non-positive value is
// reported as a domain validation failure, not a binding failure.
type UpdateCartItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
