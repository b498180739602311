//go:build unit

package cart_test

import (
	"testing"
	"time"

	"masterbikes-api/internal/domain/cart"
	"masterbikes-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(cart.Item{}),
	cmpopts.EquateEmpty(),
}

func TestNewItem(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.CartBuilder)
		errIs  error
	}{
		{
			name:   "valid item",
			mutate: func(*builder.CartBuilder) {},
		},
		{
			name:   "empty product id",
			mutate: func(b *builder.CartBuilder) { b.ProductID = "" },
			errIs:  cart.ErrEmptyProductID,
		},
		{
			name:   "negative unit price",
			mutate: func(b *builder.CartBuilder) { b.UnitPrice = -1 },
			errIs:  cart.ErrNegativeUnitPrice,
		},
		{
			name:   "zero quantity",
			mutate: func(b *builder.CartBuilder) { b.Quantity = 0 },
			errIs:  cart.ErrQuantityNotPositive,
		},
		{
			name:   "negative quantity",
			mutate: func(b *builder.CartBuilder) { b.Quantity = -3 },
			errIs:  cart.ErrQuantityNotPositive,
		},
		{
			name:   "free product is allowed",
			mutate: func(b *builder.CartBuilder) { b.UnitPrice = 0 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCartBuilder()
			tc.mutate(b)

			item, err := b.BuildItem()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.UnitPrice*b.Quantity, item.Subtotal())

			rebuilt := cart.ReconstructItem(b.ProductID, b.Name, b.UnitPrice, b.Quantity, b.ImageURLs, b.Category)
			if diff := cmp.Diff(item, rebuilt, cmpOpts...); diff != "" {
				t.Errorf("Item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCartPutItem(t *testing.T) {
	t.Run("new cart starts empty and active", func(t *testing.T) {
		c := builder.NewCartBuilder().BuildEmptyDomain()

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, cart.StatusActive, c.Status())
		assert.True(t, c.IsActive())
		assert.Empty(t, c.Items())
		assert.Zero(t, c.Total())
	})

	t.Run("put replaces an existing line for the same product", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)
		require.Len(t, c.Items(), 1)

		replacement, err := cart.NewItem(b.ProductID, b.Name, b.UnitPrice, 5, b.ImageURLs, b.Category)
		require.NoError(t, err)
		c.PutItem(replacement, b.Now.Add(time.Minute))

		require.Len(t, c.Items(), 1, "replace must not add a second line")
		assert.Equal(t, 5, c.Items()[0].Quantity())
		assert.Equal(t, 5*b.UnitPrice, c.Total())
		assert.Equal(t, b.Now.Add(time.Minute), c.UpdatedAt())
	})

	t.Run("distinct products keep their own lines", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		other, err := cart.NewItem("prod-lock-u", "Candado U", 12000, 1, nil, "accesorios")
		require.NoError(t, err)
		c.PutItem(other, b.Now)

		require.Len(t, c.Items(), 2)
		assert.Equal(t, b.UnitPrice*b.Quantity+12000, c.Total())
		assert.True(t, c.HasItem(b.ProductID))
		assert.True(t, c.HasItem("prod-lock-u"))
	})

	t.Run("items returns a copy", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		items := c.Items()
		items[0] = cart.Item{}
		assert.Equal(t, b.ProductID, c.Items()[0].ProductID())
	})
}

func TestCartChangeQuantity(t *testing.T) {
	t.Run("changes quantity in place", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.ChangeQuantity(b.ProductID, 7, b.Now.Add(time.Minute)))
		assert.Equal(t, 7, c.Items()[0].Quantity())
		assert.Equal(t, 7*b.UnitPrice, c.Total())
	})

	t.Run("unknown product fails", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		err = c.ChangeQuantity("prod-unknown", 2, b.Now)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestCartRemoveItem(t *testing.T) {
	t.Run("removes the matching line", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		c.RemoveItem(b.ProductID, b.Now.Add(time.Minute))
		assert.Empty(t, c.Items())
		assert.Zero(t, c.Total())
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		b := builder.NewCartBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		c.RemoveItem("prod-unknown", b.Now.Add(time.Hour))
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, b.ProductID, c.Items()[0].ProductID())
	})
}

func TestCartAbandon(t *testing.T) {
	b := builder.NewCartBuilder()
	c, err := b.BuildDomain()
	require.NoError(t, err)

	abandonedAt := b.Now.Add(2 * time.Hour)
	c.Abandon(abandonedAt)

	assert.Equal(t, cart.StatusAbandoned, c.Status())
	assert.False(t, c.IsActive())
	assert.Equal(t, abandonedAt, c.UpdatedAt())
	// Items survive abandonment; the cart is retired, not emptied.
	assert.Len(t, c.Items(), 1)
}
