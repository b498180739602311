//go:build e2e

package cart_test

import (
	"net/http"
	"sync"
	"testing"

	resdto "masterbikes-api/internal/handler/dto/response"
	"masterbikes-api/tests/common/httptest"
	"masterbikes-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL    = "/api/cart"
	customerID = "customer-42"
)

type cartSuite struct {
	e2e.SharedSuite
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(cartSuite))
}

func (s *cartSuite) seedHelmet(stock int) {
	s.Inventory.SetProduct(e2e.StubProduct{
		ID:           "prod-helmet-m",
		Nombre:       "Casco MTB talla M",
		Descripcion:  "Casco de montaña",
		Precio:       25000,
		Stock:        stock,
		Tipo:         "accesorios",
		ImagenesUrls: []string{"https://cdn.example.com/helmet-m.jpg"},
	})
}

func (s *cartSuite) getCart(customer string) resdto.CartResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL+"/"+customer, nil)
	var body resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *cartSuite) addItem(customer, productID string, quantity int) resdto.CartResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL+"/"+customer+"/items",
		map[string]any{"product_id": productID, "quantity": quantity})
	var body resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *cartSuite) TestGetOrCreateCart() {
	s.Run("creates an empty active cart on first access", func() {
		body := s.getCart(customerID)

		s.Equal(customerID, body.CustomerID)
		s.Equal("active", body.Status)
		s.Empty(body.Items)
		s.Zero(body.Total)
	})

	s.Run("returns the same cart on repeated access", func() {
		first := s.getCart(customerID)
		second := s.getCart(customerID)

		s.Equal(first.ID, second.ID)
	})

	s.Run("different customers get different carts", func() {
		first := s.getCart(customerID)
		other := s.getCart("customer-99")

		s.NotEqual(first.ID, other.ID)
	})
}

func (s *cartSuite) TestConcurrentGetOrCreate() {
	s.Run("concurrent first accesses converge on one cart", func() {
		const n = 8
		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = map[uuid.UUID]struct{}{}
		)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := s.getCart(customerID)

				mu.Lock()
				ids[body.ID] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()

		s.Len(ids, 1, "a customer must never end up with two active carts")
	})
}

func (s *cartSuite) TestAddItem() {
	s.Run("adds an item with a price snapshot", func() {
		s.seedHelmet(8)

		body := s.addItem(customerID, "prod-helmet-m", 2)

		s.Require().Len(body.Items, 1)
		item := body.Items[0]
		s.Equal("prod-helmet-m", item.ProductID)
		s.Equal("Casco MTB talla M", item.Name)
		s.Equal(25000, item.UnitPrice)
		s.Equal(2, item.Quantity)
		s.Equal(50000, item.Subtotal)
		s.Equal("accesorios", item.Category)
		s.Equal(50000, body.Total)
	})

	s.Run("re-adding a product replaces its quantity", func() {
		s.seedHelmet(8)

		s.addItem(customerID, "prod-helmet-m", 2)
		body := s.addItem(customerID, "prod-helmet-m", 5)

		s.Require().Len(body.Items, 1)
		s.Equal(5, body.Items[0].Quantity)
		s.Equal(125000, body.Total)
	})

	s.Run("distinct products keep separate lines", func() {
		s.seedHelmet(8)
		s.Inventory.SetProduct(e2e.StubProduct{
			ID: "prod-gloves", Nombre: "Guantes", Precio: 12000, Stock: 4, Tipo: "accesorios",
		})

		s.addItem(customerID, "prod-helmet-m", 2)
		body := s.addItem(customerID, "prod-gloves", 1)

		s.Len(body.Items, 2)
		s.Equal(62000, body.Total)
	})

	s.Run("insufficient stock answers 409", func() {
		s.seedHelmet(1)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL+"/"+customerID+"/items",
			map[string]any{"product_id": "prod-helmet-m", "quantity": 3})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})

	s.Run("unknown product answers 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL+"/"+customerID+"/items",
			map[string]any{"product_id": "prod-nope", "quantity": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("inventory outage answers 502", func() {
		s.Inventory.SetDown(true)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL+"/"+customerID+"/items",
			map[string]any{"product_id": "prod-helmet-m", "quantity": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Inventory service")
	})
}

func (s *cartSuite) TestUpdateItemQuantity() {
	s.Run("updates the quantity and recomputes the total", func() {
		s.seedHelmet(8)
		s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			cartURL+"/"+customerID+"/items/prod-helmet-m", map[string]any{"quantity": 4})

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(4, body.Items[0].Quantity)
		s.Equal(100000, body.Total)
	})

	s.Run("non-positive quantity answers 400", func() {
		s.seedHelmet(8)
		s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			cartURL+"/"+customerID+"/items/prod-helmet-m", map[string]any{"quantity": -1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "greater than zero")
	})

	s.Run("product not in the cart answers 404", func() {
		s.seedHelmet(8)
		s.getCart(customerID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			cartURL+"/"+customerID+"/items/prod-helmet-m", map[string]any{"quantity": 2})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not in the cart")
	})

	s.Run("raising beyond stock answers 409", func() {
		s.seedHelmet(3)
		s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			cartURL+"/"+customerID+"/items/prod-helmet-m", map[string]any{"quantity": 9})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})
}

func (s *cartSuite) TestRemoveItem() {
	s.Run("removes an item from the cart", func() {
		s.seedHelmet(8)
		cart := s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			cartURL+"/"+cart.ID.String()+"/items/prod-helmet-m?customerId="+customerID, nil)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Zero(body.Total)
	})

	s.Run("removing an absent product is a no-op", func() {
		s.seedHelmet(8)
		cart := s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			cartURL+"/"+cart.ID.String()+"/items/prod-nope?customerId="+customerID, nil)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
	})

	s.Run("another customer's cart answers 404", func() {
		s.seedHelmet(8)
		cart := s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			cartURL+"/"+cart.ID.String()+"/items/prod-helmet-m?customerId=customer-99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

func (s *cartSuite) TestAbandonCart() {
	s.Run("abandoning yields a fresh cart on next access", func() {
		s.seedHelmet(8)
		cart := s.addItem(customerID, "prod-helmet-m", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			cartURL+"/"+cart.ID.String()+"?customerId="+customerID, nil)
		s.Equal(http.StatusNoContent, rec.Code)

		fresh := s.getCart(customerID)
		s.NotEqual(cart.ID, fresh.ID)
		s.Empty(fresh.Items)
	})

	s.Run("unknown cart answers 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			cartURL+"/"+uuid.NewString()+"?customerId="+customerID, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}
