//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// StubBike mirrors the inventory service's rental-bike payload.
type StubBike struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Disponible   bool   `json:"disponible"`
	TarifaDiaria int    `json:"tarifaDiaria"`
	Deposito     int    `json:"deposito"`
}

// StubProduct mirrors the inventory service's sale-product payload.
type StubProduct struct {
	ID           string   `json:"id"`
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion"`
	Precio       int      `json:"precio"`
	Stock        int      `json:"stock"`
	Tipo         string   `json:"tipo"`
	ImagenesUrls []string `json:"imagenesUrls"`
}

// InventoryStub stands in for the external inventory service. Tests seed it
// with bikes and products; unknown ids answer 404 like the real service.
type InventoryStub struct {
	mu       sync.Mutex
	bikes    map[string]StubBike
	products map[string]StubProduct
	down     bool
	server   *httptest.Server
}

func NewInventoryStub(t *testing.T) *InventoryStub {
	t.Helper()

	stub := &InventoryStub{
		bikes:    map[string]StubBike{},
		products: map[string]StubProduct{},
	}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *InventoryStub) URL() string {
	return s.server.URL
}

func (s *InventoryStub) SetBike(b StubBike) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bikes[b.ID] = b
}

func (s *InventoryStub) SetProduct(p StubProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SetDown makes every request answer 503 until Reset.
func (s *InventoryStub) SetDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *InventoryStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bikes = map[string]StubBike{}
	s.products = map[string]StubProduct{}
	s.down = false
}

func (s *InventoryStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.down {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/bicicletas/arriendo/"):
		id := strings.TrimPrefix(r.URL.Path, "/bicicletas/arriendo/")
		bike, ok := s.bikes[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, bike)
	case strings.HasPrefix(r.URL.Path, "/venta/producto/"):
		id := strings.TrimPrefix(r.URL.Path, "/venta/producto/")
		product, ok := s.products[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, product)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
