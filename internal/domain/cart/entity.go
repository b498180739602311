package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrNegativeUnitPrice   = errors.New("unit price cannot be negative")
	ErrEmptyProductID      = errors.New("product id must not be empty")
	ErrItemNotFound        = errors.New("item not in cart")
)

// Item is a snapshot of a sale product at the moment it entered the cart.
// The product id is unique within one cart.
type Item struct {
	productID string
	name      string
	unitPrice int
	quantity  int
	imageURLs []string
	category  string
}

func NewItem(productID, name string, unitPrice, quantity int, imageURLs []string, category string) (Item, error) {
	if productID == "" {
		return Item{}, ErrEmptyProductID
	}
	if unitPrice < 0 {
		return Item{}, ErrNegativeUnitPrice
	}
	if quantity <= 0 {
		return Item{}, ErrQuantityNotPositive
	}
	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		imageURLs: imageURLs,
		category:  category,
	}, nil
}

func ReconstructItem(productID, name string, unitPrice, quantity int, imageURLs []string, category string) Item {
	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		imageURLs: imageURLs,
		category:  category,
	}
}

func (i Item) ProductID() string   { return i.productID }
func (i Item) Name() string        { return i.name }
func (i Item) UnitPrice() int      { return i.unitPrice }
func (i Item) Quantity() int       { return i.quantity }
func (i Item) ImageURLs() []string { return i.imageURLs }
func (i Item) Category() string    { return i.category }

func (i Item) Subtotal() int {
	return i.unitPrice * i.quantity
}

// Cart is the mutable pre-checkout collection for one customer. At most one
// active cart exists per customer; the store enforces that with a partial
// unique index.
type Cart struct {
	id         uuid.UUID
	customerID string
	items      []Item
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCart(customerID string, now time.Time) *Cart {
	return &Cart{
		id:         uuid.New(),
		customerID: customerID,
		items:      []Item{},
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructCart(
	id uuid.UUID,
	customerID string,
	items []Item,
	status Status,
	createdAt, updatedAt time.Time,
) *Cart {
	return &Cart{
		id:         id,
		customerID: customerID,
		items:      items,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// PutItem replaces any entry with the same product id instead of accumulating
// quantities; the new snapshot wins.
func (c *Cart) PutItem(item Item, now time.Time) {
	c.removeByProductID(item.ProductID())
	c.items = append(c.items, item)
	c.updatedAt = now
}

// ChangeQuantity mutates the matching item's quantity in place, leaving the
// rest of the snapshot untouched.
func (c *Cart) ChangeQuantity(productID string, quantity int, now time.Time) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	for idx := range c.items {
		if c.items[idx].productID == productID {
			c.items[idx].quantity = quantity
			c.updatedAt = now
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem is a no-op when the product is absent.
func (c *Cart) RemoveItem(productID string, now time.Time) {
	c.removeByProductID(productID)
	c.updatedAt = now
}

// Abandon soft-retires the cart; there is no hard delete.
func (c *Cart) Abandon(now time.Time) {
	c.status = StatusAbandoned
	c.updatedAt = now
}

func (c *Cart) removeByProductID(productID string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.productID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

func (c *Cart) HasItem(productID string) bool {
	for _, it := range c.items {
		if it.productID == productID {
			return true
		}
	}
	return false
}

// Total is always recomputed from the items, never stored.
func (c *Cart) Total() int {
	total := 0
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

func (c *Cart) IsActive() bool {
	return c.status == StatusActive
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) CustomerID() string   { return c.customerID }
func (c *Cart) Status() Status       { return c.status }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
