package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
)

// SampleUser returns a low-risk user record for tests: common email domain,
// plain name, local part matching the name.
func SampleUser() model.UserRecord {
	return model.UserRecord{
		ID:    2,
		Name:  "John Smith",
		Email: "john@gmail.com",
		City:  "Springfield",
	}
}

// SampleProduct returns a low-risk product record for tests: cheap clothing.
func SampleProduct() model.ProductRecord {
	return model.ProductRecord{
		ID:       4,
		Title:    "Slim Fit T-Shirt",
		Price:    decimal.NewFromInt(20),
		Category: "men's clothing",
	}
}

// HighRiskUser returns a user whose email alone pushes the score up:
// disposable domain and a local part unrelated to the name.
func HighRiskUser() model.UserRecord {
	return model.UserRecord{
		ID:    2,
		Name:  "Jane Doe",
		Email: "test@mailinator.com",
		City:  "Gotham",
	}
}

// HighRiskProduct returns an expensive electronics product.
func HighRiskProduct() model.ProductRecord {
	return model.ProductRecord{
		ID:       9,
		Title:    "4K OLED Monitor",
		Price:    decimal.NewFromInt(600),
		Category: "electronics",
	}
}
