package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Rental errors
	ErrRentalNotFound        = errors.New("rental not found")
	ErrRentalAlreadyFinished = errors.New("rental already finished")
	ErrBikeNotFound          = errors.New("bike not found")
	ErrBikeUnavailable       = errors.New("bike not available for rental")
	ErrInvalidRentalPeriod   = errors.New("invalid rental period")
	ErrInvalidRentalStatus   = errors.New("invalid rental status")
	ErrCustomerRutRequired   = errors.New("customer rut is required")

	// Cart errors
	ErrCartNotFound      = errors.New("cart not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductNotInCart  = errors.New("product not in cart")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")

	// Upstream errors
	ErrInventoryUnavailable = errors.New("inventory service unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
