//go:build unit

package inventory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"masterbikes-api/internal/infra/inventory"
	"masterbikes-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *inventory.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return inventory.NewClient(config.InventoryConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestGetRentalBike(t *testing.T) {
	t.Run("decodes a complete bike", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bicicletas/arriendo/bike-1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "bike-1",
				"nombre": "MTB Aro 29",
				"disponible": true,
				"tarifaDiaria": 15000,
				"deposito": 50000
			}`))
		}))

		bike, err := client.GetRentalBike(context.Background(), "bike-1")
		require.NoError(t, err)
		assert.Equal(t, "bike-1", bike.ID)
		assert.Equal(t, "MTB Aro 29", bike.Name)
		assert.True(t, bike.Available)
		assert.Equal(t, 15000, bike.DailyRate)
		assert.Equal(t, 50000, bike.Deposit)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetRentalBike(context.Background(), "missing")
		assert.ErrorIs(t, err, inventory.ErrNotFound)
	})

	t.Run("5xx maps to ErrUpstream", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.GetRentalBike(context.Background(), "bike-1")
		assert.ErrorIs(t, err, inventory.ErrUpstream)
	})

	t.Run("missing required fields fail closed", func(t *testing.T) {
		// A payload without tarifaDiaria must never default to a zero rate.
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "bike-1", "nombre": "MTB", "disponible": true}`))
		}))

		_, err := client.GetRentalBike(context.Background(), "bike-1")
		assert.ErrorIs(t, err, inventory.ErrUpstream)
	})

	t.Run("malformed JSON maps to ErrUpstream", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))

		_, err := client.GetRentalBike(context.Background(), "bike-1")
		assert.ErrorIs(t, err, inventory.ErrUpstream)
	})

	t.Run("unreachable server maps to ErrUpstream", func(t *testing.T) {
		client := inventory.NewClient(config.InventoryConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 500 * time.Millisecond,
		})

		_, err := client.GetRentalBike(context.Background(), "bike-1")
		assert.ErrorIs(t, err, inventory.ErrUpstream)
	})
}

func TestGetSaleProduct(t *testing.T) {
	t.Run("decodes a complete product", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/venta/producto/prod-1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "prod-1",
				"nombre": "Casco MTB",
				"descripcion": "Talla M",
				"precio": 25000,
				"stock": 8,
				"tipo": "accesorios",
				"imagenesUrls": ["https://cdn.example.com/casco.jpg"]
			}`))
		}))

		product, err := client.GetSaleProduct(context.Background(), "prod-1")
		require.NoError(t, err)
		assert.Equal(t, "prod-1", product.ID)
		assert.Equal(t, "Casco MTB", product.Name)
		assert.Equal(t, 25000, product.Price)
		assert.Equal(t, 8, product.Stock)
		assert.Equal(t, "accesorios", product.Category)
		assert.Equal(t, []string{"https://cdn.example.com/casco.jpg"}, product.ImageURLs)
	})

	t.Run("zero stock is a valid answer", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "prod-1", "nombre": "Casco", "precio": 25000, "stock": 0}`))
		}))

		product, err := client.GetSaleProduct(context.Background(), "prod-1")
		require.NoError(t, err)
		assert.Zero(t, product.Stock)
	})

	t.Run("missing stock fails closed", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "prod-1", "nombre": "Casco", "precio": 25000}`))
		}))

		_, err := client.GetSaleProduct(context.Background(), "prod-1")
		assert.ErrorIs(t, err, inventory.ErrUpstream)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetSaleProduct(context.Background(), "missing")
		assert.ErrorIs(t, err, inventory.ErrNotFound)
	})
}
