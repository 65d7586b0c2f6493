package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
)

// ValidateIntegrationRequest is the input DTO for the ValidateIntegration use case.
type ValidateIntegrationRequest struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

// AssessmentResponse is the output DTO returned after an evaluation.
type AssessmentResponse struct {
	AssessedAt      time.Time `json:"assessed_at"`
	Reasons         []string  `json:"reasons"`
	ID              uuid.UUID `json:"id"`
	UserID          int       `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	UserCity        string    `json:"user_city"`
	ProductID       int       `json:"product_id"`
	ProductTitle    string    `json:"product_title"`
	ProductPrice    string    `json:"product_price"`
	ProductCategory string    `json:"product_category"`
	RiskLevel       string    `json:"risk_level"`
	Decision        string    `json:"decision"`
	RiskScore       int       `json:"risk_score"`
	Blocked         bool      `json:"blocked"`
}

// GetAssessmentRequest is the input DTO for retrieving a stored assessment.
type GetAssessmentRequest struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
}

// FromModel maps a domain model to the response DTO.
func FromModel(a *model.IntegrationAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:              a.ID(),
		UserID:          a.User().ID,
		UserName:        a.User().Name,
		UserEmail:       a.User().Email,
		UserCity:        a.User().City,
		ProductID:       a.Product().ID,
		ProductTitle:    a.Product().Title,
		ProductPrice:    a.Product().Price.String(),
		ProductCategory: a.Product().Category,
		RiskLevel:       a.RiskLevel().String(),
		RiskScore:       a.RiskScore(),
		Decision:        a.Decision().String(),
		Blocked:         a.Blocked(),
		Reasons:         a.Reasons(),
		AssessedAt:      a.AssessedAt(),
	}
}
