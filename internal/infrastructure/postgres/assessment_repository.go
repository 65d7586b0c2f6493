package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/domain/valueobject"
)

// Compile-time interface check.
var _ port.AssessmentRepository = (*AssessmentRepository)(nil)

// AssessmentRepository implements port.AssessmentRepository using PostgreSQL.
// It also satisfies port.ResultSink so the daemon can feed it directly from
// the evaluation pipeline.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new PostgreSQL-backed assessment repository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

// Save persists an assessment and its ordered reasons.
func (r *AssessmentRepository) Save(ctx context.Context, a *model.IntegrationAssessment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	user := a.User()
	product := a.Product()

	query := `
		INSERT INTO integration_assessments (
			id, user_id, user_name, user_email, user_city,
			product_id, product_title, product_price, product_category,
			risk_level, risk_score, decision, blocked,
			assessed_at, version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.Exec(ctx, query,
		a.ID(),
		user.ID,
		user.Name,
		user.Email,
		user.City,
		product.ID,
		product.Title,
		product.Price,
		product.Category,
		a.RiskLevel().String(),
		a.RiskScore(),
		a.Decision().String(),
		a.Blocked(),
		a.AssessedAt(),
		a.Version(),
		a.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	for i, reason := range a.Reasons() {
		_, err = tx.Exec(ctx,
			`INSERT INTO assessment_reasons (assessment_id, position, reason) VALUES ($1, $2, $3)`,
			a.ID(), i, reason,
		)
		if err != nil {
			return fmt.Errorf("failed to save assessment reason: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assessment: %w", err)
	}

	return nil
}

// Write satisfies port.ResultSink by delegating to Save.
func (r *AssessmentRepository) Write(ctx context.Context, a *model.IntegrationAssessment) error {
	return r.Save(ctx, a)
}

const selectColumns = `
	id, user_id, user_name, user_email, user_city,
	product_id, product_title, product_price, product_category,
	risk_level, risk_score, decision,
	assessed_at, version, created_at
`

// FindByID retrieves an assessment by its unique identifier. Returns
// (nil, nil) when no row matches.
func (r *AssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.IntegrationAssessment, error) {
	query := `SELECT ` + selectColumns + ` FROM integration_assessments WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// FindByPair retrieves the most recent assessment for a (user, product) pair.
// Returns (nil, nil) when the pair was never evaluated.
func (r *AssessmentRepository) FindByPair(ctx context.Context, userID, productID int) (*model.IntegrationAssessment, error) {
	query := `SELECT ` + selectColumns + `
		FROM integration_assessments
		WHERE user_id = $1 AND product_id = $2
		ORDER BY assessed_at DESC
		LIMIT 1`
	return r.scanOne(ctx, query, userID, productID)
}

func (r *AssessmentRepository) scanOne(ctx context.Context, query string, args ...any) (*model.IntegrationAssessment, error) {
	row := r.pool.QueryRow(ctx, query, args...)

	var (
		id              uuid.UUID
		user            model.UserRecord
		productID       int
		productTitle    string
		productPrice    decimal.Decimal
		productCategory string
		riskLevelStr    string
		riskScore       int
		decisionStr     string
		assessedAt      time.Time
		version         int
		createdAt       time.Time
	)

	err := row.Scan(
		&id, &user.ID, &user.Name, &user.Email, &user.City,
		&productID, &productTitle, &productPrice, &productCategory,
		&riskLevelStr, &riskScore, &decisionStr,
		&assessedAt, &version, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	riskLevel, err := valueobject.RiskLevelFromString(riskLevelStr)
	if err != nil {
		return nil, fmt.Errorf("failed to restore risk level: %w", err)
	}
	decision, err := valueobject.DecisionFromString(decisionStr)
	if err != nil {
		return nil, fmt.Errorf("failed to restore decision: %w", err)
	}

	reasons, err := r.loadReasons(ctx, id)
	if err != nil {
		return nil, err
	}

	product := model.ProductRecord{
		ID:       productID,
		Title:    productTitle,
		Price:    productPrice,
		Category: productCategory,
	}

	return model.Reconstruct(
		id, user, product,
		riskLevel, riskScore, decision, reasons,
		assessedAt, version, createdAt,
	), nil
}

func (r *AssessmentRepository) loadReasons(ctx context.Context, assessmentID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT reason FROM assessment_reasons WHERE assessment_id = $1 ORDER BY position`,
		assessmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment reasons: %w", err)
	}
	defer rows.Close()

	reasons := make([]string, 0)
	for rows.Next() {
		var reason string
		if err := rows.Scan(&reason); err != nil {
			return nil, fmt.Errorf("failed to scan reason: %w", err)
		}
		reasons = append(reasons, reason)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reasons: %w", err)
	}

	return reasons, nil
}
