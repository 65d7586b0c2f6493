package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeAssessmentCompleted is emitted when an integration evaluation finishes.
	EventTypeAssessmentCompleted = "integration.assessment.completed"

	// EventTypeIntegrationBlocked is emitted when the score crosses the blocking threshold.
	EventTypeIntegrationBlocked = "integration.blocked"
)

// DomainEvent is implemented by all events raised by the assessment aggregate.
type DomainEvent interface {
	EventType() string
	AggregateID() uuid.UUID
}

// AssessmentCompleted is published for every finished evaluation, blocked or not.
type AssessmentCompleted struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	UserID       int       `json:"user_id"`
	ProductID    int       `json:"product_id"`
	RiskScore    int       `json:"risk_score"`
	RiskLevel    string    `json:"risk_level"`
	Decision     string    `json:"decision"`
	Reasons      []string  `json:"reasons"`
	AssessedAt   time.Time `json:"assessed_at"`
}

// EventType returns the event type identifier.
func (e AssessmentCompleted) EventType() string {
	return EventTypeAssessmentCompleted
}

// AggregateID returns the assessment ID as the aggregate identifier.
func (e AssessmentCompleted) AggregateID() uuid.UUID {
	return e.AssessmentID
}

// IntegrationBlocked is published when an evaluation is blocked, so downstream
// consumers can alert or open a review case.
type IntegrationBlocked struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	UserID       int       `json:"user_id"`
	ProductID    int       `json:"product_id"`
	RiskScore    int       `json:"risk_score"`
	Reasons      []string  `json:"reasons"`
	BlockedAt    time.Time `json:"blocked_at"`
}

// EventType returns the event type identifier.
func (e IntegrationBlocked) EventType() string {
	return EventTypeIntegrationBlocked
}

// AggregateID returns the assessment ID as the aggregate identifier.
func (e IntegrationBlocked) AggregateID() uuid.UUID {
	return e.AssessmentID
}
