package model

import "github.com/shopspring/decimal"

// ProductRecord is an immutable snapshot of a product fetched from the
// external product catalog. Category may be empty for uncategorized items.
type ProductRecord struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}
