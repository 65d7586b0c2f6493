package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vitorsantos08-ui/API/internal/application/dto"
	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/domain/service"
)

// ValidateIntegration is the use case for evaluating a (user, product) pair:
// it fetches both records, scores them, applies the blocking threshold,
// forwards the assessment to every sink, and publishes domain events.
type ValidateIntegration struct {
	users     port.UserDirectory
	products  port.ProductCatalog
	scorer    service.Scorer
	sinks     []port.ResultSink
	publisher port.EventPublisher
	observer  port.Observer
	audit     *slog.Logger
	threshold int
}

// NewValidateIntegration creates a new ValidateIntegration use case.
// The audit logger receives one entry per fetch failure and one per final
// decision. A nil observer is replaced with a no-op.
func NewValidateIntegration(
	users port.UserDirectory,
	products port.ProductCatalog,
	scorer service.Scorer,
	sinks []port.ResultSink,
	publisher port.EventPublisher,
	observer port.Observer,
	audit *slog.Logger,
	threshold int,
) *ValidateIntegration {
	if observer == nil {
		observer = port.NopObserver{}
	}
	return &ValidateIntegration{
		users:     users,
		products:  products,
		scorer:    scorer,
		sinks:     sinks,
		publisher: publisher,
		observer:  observer,
		audit:     audit,
		threshold: threshold,
	}
}

// Execute runs the evaluation pipeline. Absence of either record aborts
// before scoring; nothing is persisted in that case. The assessment is
// forwarded to the sinks even when blocked.
func (uc *ValidateIntegration) Execute(ctx context.Context, req dto.ValidateIntegrationRequest) (dto.AssessmentResponse, error) {
	uc.observer.FetchStarted("user", req.UserID)
	user, err := uc.users.FetchUser(ctx, req.UserID)
	if err != nil {
		uc.observer.FetchFailed("user", req.UserID, err)
		uc.audit.Warn("user unavailable",
			slog.Int("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		return dto.AssessmentResponse{}, fmt.Errorf("user %d: %w", req.UserID, err)
	}

	uc.observer.FetchStarted("product", req.ProductID)
	product, err := uc.products.FetchProduct(ctx, req.ProductID)
	if err != nil {
		uc.observer.FetchFailed("product", req.ProductID, err)
		uc.audit.Warn("product unavailable",
			slog.Int("product_id", req.ProductID),
			slog.String("error", err.Error()),
		)
		return dto.AssessmentResponse{}, fmt.Errorf("product %d: %w", req.ProductID, err)
	}

	assessment, err := model.NewIntegrationAssessment(user, product)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	out := uc.scorer.Score(service.RiskInput{User: user, Product: product})
	if err := assessment.Assess(out.Score, out.Reasons, uc.threshold); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to assess pair: %w", err)
	}

	uc.observer.AssessmentProduced(assessment.RiskScore(), assessment.Blocked())

	if assessment.Blocked() {
		uc.audit.Warn("integration blocked",
			slog.Int("user_id", user.ID),
			slog.Int("product_id", product.ID),
			slog.Int("risk_score", assessment.RiskScore()),
		)
	} else {
		uc.audit.Info("integration authorized",
			slog.Int("user_id", user.ID),
			slog.Int("product_id", product.ID),
			slog.Int("risk_score", assessment.RiskScore()),
		)
	}

	// Persist to every sink, blocked or not.
	for _, sink := range uc.sinks {
		if err := sink.Write(ctx, assessment); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to persist assessment: %w", err)
		}
	}

	events := assessment.DomainEvents()
	if len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.FromModel(assessment), nil
}
