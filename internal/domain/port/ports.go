package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vitorsantos08-ui/API/internal/domain/event"
	"github.com/vitorsantos08-ui/API/internal/domain/model"
)

// ErrRecordNotFound is the terminal absence signal: the upstream record does
// not exist or could not be obtained within the retry budget.
var ErrRecordNotFound = errors.New("record not found")

// UserDirectory defines the port for fetching user records from the external
// user service.
type UserDirectory interface {
	FetchUser(ctx context.Context, id int) (model.UserRecord, error)
}

// ProductCatalog defines the port for fetching product records from the
// external product service.
type ProductCatalog interface {
	FetchProduct(ctx context.Context, id int) (model.ProductRecord, error)
}

// ResultSink receives every completed assessment, blocked or not.
type ResultSink interface {
	Write(ctx context.Context, assessment *model.IntegrationAssessment) error
}

// AssessmentRepository defines the persistence port for integration assessments.
type AssessmentRepository interface {
	// Save persists a new assessment.
	Save(ctx context.Context, assessment *model.IntegrationAssessment) error

	// FindByID retrieves an assessment by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*model.IntegrationAssessment, error)

	// FindByPair retrieves the most recent assessment for a (user, product) pair.
	FindByPair(ctx context.Context, userID, productID int) (*model.IntegrationAssessment, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// Observer receives structured progress events from the evaluation pipeline.
// Implementations render or count them; the core components never print.
type Observer interface {
	FetchStarted(resource string, id int)
	FetchFailed(resource string, id int, err error)
	AssessmentProduced(score int, blocked bool)
}

// NopObserver is an Observer that ignores every event.
type NopObserver struct{}

func (NopObserver) FetchStarted(string, int)       {}
func (NopObserver) FetchFailed(string, int, error) {}
func (NopObserver) AssessmentProduced(int, bool)   {}
