package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Compile-time interface check.
var _ port.ResultSink = (*FileSink)(nil)

// FileSink persists one JSON document per evaluation under a results
// directory, named result_user{uid}_product{pid}.json. A later evaluation of
// the same pair overwrites the earlier file.
type FileSink struct {
	dir string
}

// NewFileSink creates the results directory if needed and returns the sink.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory %s: %w", dir, err)
	}
	return &FileSink{dir: dir}, nil
}

type resultUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type resultProduct struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    json.RawMessage `json:"price"`
	Category string          `json:"category"`
}

type resultAntifraud struct {
	Score   int      `json:"score"`
	Blocked bool     `json:"blocked"`
	Reasons []string `json:"reasons"`
}

type resultDocument struct {
	Timestamp string          `json:"timestamp"`
	User      resultUser      `json:"user"`
	Product   resultProduct   `json:"product"`
	Antifraud resultAntifraud `json:"antifraud"`
}

// Write serializes the assessment to its result file.
func (s *FileSink) Write(_ context.Context, a *model.IntegrationAssessment) error {
	user := a.User()
	product := a.Product()

	// Price is emitted as a bare JSON number, not a quoted decimal string.
	price := json.RawMessage(product.Price.String())

	doc := resultDocument{
		Timestamp: a.AssessedAt().Format("2006-01-02 15:04:05"),
		User: resultUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			City:  user.City,
		},
		Product: resultProduct{
			ID:       product.ID,
			Title:    product.Title,
			Price:    price,
			Category: product.Category,
		},
		Antifraud: resultAntifraud{
			Score:   a.RiskScore(),
			Blocked: a.Blocked(),
			Reasons: a.Reasons(),
		},
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	name := fmt.Sprintf("result_user%d_product%d.json", user.ID, product.ID)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}

	return nil
}
