package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"masterbikes-api/internal/pkg/config"
	"masterbikes-api/internal/pkg/errs"
)

var (
	// ErrNotFound means the inventory service answered and the item does not exist.
	ErrNotFound = errors.New("inventory item not found")
	// ErrUpstream covers everything that is not a definitive answer: transport
	// failures, timeouts, non-2xx statuses and malformed payloads. Callers must
	// fail closed on it rather than defaulting numeric fields.
	ErrUpstream = errors.New("inventory service unavailable")
)

// Bike is the rental-side inventory record the core depends on.
type Bike struct {
	ID        string
	Name      string
	Available bool
	DailyRate int
	Deposit   int
}

// Product is the sale-side inventory record the core depends on.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int
	Stock       int
	Category    string
	ImageURLs   []string
}

// Wire DTOs. Required fields are pointers so an absent or null field is
// distinguishable from a zero value and can be rejected.
type bikeDTO struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Disponible  *bool  `json:"disponible"`
	TarifaDiaria *int  `json:"tarifaDiaria"`
	Deposito    *int   `json:"deposito"`
}

type productDTO struct {
	ID           string   `json:"id"`
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion"`
	Precio       *int     `json:"precio"`
	Stock        *int     `json:"stock"`
	Tipo         string   `json:"tipo"`
	ImagenesUrls []string `json:"imagenesUrls"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.InventoryConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (c *Client) GetRentalBike(ctx context.Context, id string) (*Bike, error) {
	var dto bikeDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/bicicletas/arriendo/%s", c.baseURL, id), &dto); err != nil {
		return nil, err
	}
	if dto.Disponible == nil || dto.TarifaDiaria == nil || dto.Deposito == nil {
		return nil, errs.Mark(errs.New("bike response missing required fields"), ErrUpstream)
	}
	return &Bike{
		ID:        dto.ID,
		Name:      dto.Nombre,
		Available: *dto.Disponible,
		DailyRate: *dto.TarifaDiaria,
		Deposit:   *dto.Deposito,
	}, nil
}

func (c *Client) GetSaleProduct(ctx context.Context, id string) (*Product, error) {
	var dto productDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/venta/producto/%s", c.baseURL, id), &dto); err != nil {
		return nil, err
	}
	if dto.Precio == nil || dto.Stock == nil {
		return nil, errs.Mark(errs.New("product response missing required fields"), ErrUpstream)
	}
	return &Product{
		ID:          dto.ID,
		Name:        dto.Nombre,
		Description: dto.Descripcion,
		Price:       *dto.Precio,
		Stock:       *dto.Stock,
		Category:    dto.Tipo,
		ImageURLs:   dto.ImagenesUrls,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errs.Mark(err, ErrUpstream)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrUpstream)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return errs.Mark(errs.New(fmt.Sprintf("unexpected inventory status %d", resp.StatusCode)), ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, ErrUpstream)
	}
	return nil
}
