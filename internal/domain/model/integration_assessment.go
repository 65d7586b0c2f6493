package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitorsantos08-ui/API/internal/domain/event"
	"github.com/vitorsantos08-ui/API/internal/domain/valueobject"
)

// IntegrationAssessment is the aggregate root for a single (user, product)
// integration evaluation. It is created unscored; Assess applies the score
// and derives the risk level and decision.
type IntegrationAssessment struct {
	assessedAt   time.Time
	createdAt    time.Time
	user         UserRecord
	product      ProductRecord
	reasons      []string
	domainEvents []event.DomainEvent
	riskLevel    valueobject.RiskLevel
	decision     valueobject.Decision
	riskScore    int
	version      int
	id           uuid.UUID
}

// NewIntegrationAssessment creates a new assessment for the given record pair.
// Record contents are not validated beyond their identifiers; malformed field
// values are the scorer's concern and degrade to risk-increasing branches.
func NewIntegrationAssessment(user UserRecord, product ProductRecord) (*IntegrationAssessment, error) {
	if user.ID <= 0 {
		return nil, fmt.Errorf("user ID must be positive, got %d", user.ID)
	}
	if product.ID <= 0 {
		return nil, fmt.Errorf("product ID must be positive, got %d", product.ID)
	}

	return &IntegrationAssessment{
		id:        uuid.New(),
		user:      user,
		product:   product,
		riskLevel: valueobject.RiskLevelLow,
		reasons:   make([]string, 0),
		version:   1,
		createdAt: time.Now().UTC(),
	}, nil
}

// Assess applies a computed risk score and its ordered reasons, deriving the
// risk level and the allow/block decision against the given threshold.
func (a *IntegrationAssessment) Assess(riskScore int, reasons []string, threshold int) error {
	if riskScore < 0 || riskScore > 100 {
		return fmt.Errorf("risk score must be between 0 and 100, got %d", riskScore)
	}

	a.riskScore = riskScore
	a.reasons = reasons
	a.riskLevel = valueobject.RiskLevelFromScore(riskScore)
	a.decision = valueobject.DecisionFromScore(riskScore, threshold)
	a.assessedAt = time.Now().UTC()
	a.version++

	a.domainEvents = append(a.domainEvents, event.AssessmentCompleted{
		AssessmentID: a.id,
		UserID:       a.user.ID,
		ProductID:    a.product.ID,
		RiskScore:    a.riskScore,
		RiskLevel:    a.riskLevel.String(),
		Decision:     a.decision.String(),
		Reasons:      a.reasons,
		AssessedAt:   a.assessedAt,
	})

	if a.decision.IsBlocked() {
		a.domainEvents = append(a.domainEvents, event.IntegrationBlocked{
			AssessmentID: a.id,
			UserID:       a.user.ID,
			ProductID:    a.product.ID,
			RiskScore:    a.riskScore,
			Reasons:      a.reasons,
			BlockedAt:    a.assessedAt,
		})
	}

	return nil
}

// Reconstruct rebuilds an IntegrationAssessment from persisted data
// (no validation, no events).
func Reconstruct(
	id uuid.UUID,
	user UserRecord,
	product ProductRecord,
	riskLevel valueobject.RiskLevel,
	riskScore int,
	decision valueobject.Decision,
	reasons []string,
	assessedAt time.Time,
	version int,
	createdAt time.Time,
) *IntegrationAssessment {
	return &IntegrationAssessment{
		id:           id,
		user:         user,
		product:      product,
		riskLevel:    riskLevel,
		riskScore:    riskScore,
		decision:     decision,
		reasons:      reasons,
		assessedAt:   assessedAt,
		version:      version,
		createdAt:    createdAt,
		domainEvents: make([]event.DomainEvent, 0),
	}
}

// --- Accessors ---

func (a *IntegrationAssessment) ID() uuid.UUID                    { return a.id }
func (a *IntegrationAssessment) User() UserRecord                 { return a.user }
func (a *IntegrationAssessment) Product() ProductRecord           { return a.product }
func (a *IntegrationAssessment) RiskLevel() valueobject.RiskLevel { return a.riskLevel }
func (a *IntegrationAssessment) RiskScore() int                   { return a.riskScore }
func (a *IntegrationAssessment) Decision() valueobject.Decision   { return a.decision }
func (a *IntegrationAssessment) Reasons() []string                { return a.reasons }
func (a *IntegrationAssessment) Blocked() bool                    { return a.decision.IsBlocked() }
func (a *IntegrationAssessment) AssessedAt() time.Time            { return a.assessedAt }
func (a *IntegrationAssessment) Version() int                     { return a.version }
func (a *IntegrationAssessment) CreatedAt() time.Time             { return a.createdAt }

// DomainEvents returns all accumulated domain events and clears them.
func (a *IntegrationAssessment) DomainEvents() []event.DomainEvent {
	evts := a.domainEvents
	a.domainEvents = make([]event.DomainEvent, 0)
	return evts
}
