package provider

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Compile-time interface check.
var _ port.ProductCatalog = (*ProductClient)(nil)

// ProductClient implements port.ProductCatalog against the external product
// service.
type ProductClient struct {
	client fetchClient
}

// NewProductClient creates a new product catalog client.
func NewProductClient(baseURL string, opts Options, logger *slog.Logger) *ProductClient {
	return &ProductClient{client: newFetchClient(baseURL, opts, logger)}
}

// productPayload mirrors the upstream product document. A missing price
// decodes to zero and lands in the low-price scoring branch.
type productPayload struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// FetchProduct retrieves a single product record by ID.
func (c *ProductClient) FetchProduct(ctx context.Context, id int) (model.ProductRecord, error) {
	var payload productPayload
	if err := c.client.getJSON(ctx, strconv.Itoa(id), &payload); err != nil {
		return model.ProductRecord{}, err
	}

	return model.ProductRecord{
		ID:       payload.ID,
		Title:    payload.Title,
		Price:    payload.Price,
		Category: payload.Category,
	}, nil
}
