package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vitorsantos08-ui/API/internal/application/dto"
	"github.com/vitorsantos08-ui/API/internal/application/usecase"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Compile-time assertion that IntegrationServiceHandler implements IntegrationServiceServer.
var _ IntegrationServiceServer = (*IntegrationServiceHandler)(nil)

// IntegrationServiceHandler implements the gRPC IntegrationServiceServer interface.
type IntegrationServiceHandler struct {
	UnimplementedIntegrationServiceServer
	validateIntegration *usecase.ValidateIntegration
	getAssessment       *usecase.GetAssessment
	logger              *slog.Logger
}

// NewIntegrationServiceHandler creates a new gRPC handler.
func NewIntegrationServiceHandler(
	validateIntegration *usecase.ValidateIntegration,
	getAssessment *usecase.GetAssessment,
	logger *slog.Logger,
) *IntegrationServiceHandler {
	return &IntegrationServiceHandler{
		validateIntegration: validateIntegration,
		getAssessment:       getAssessment,
		logger:              logger,
	}
}

// Proto-aligned request/response message types.

// ValidateIntegrationRequest represents the proto ValidateIntegrationRequest message.
type ValidateIntegrationRequest struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

// AssessmentMsg represents the proto IntegrationAssessment message.
type AssessmentMsg struct {
	ID              string   `json:"id"`
	UserID          int      `json:"user_id"`
	UserName        string   `json:"user_name"`
	UserEmail       string   `json:"user_email"`
	UserCity        string   `json:"user_city"`
	ProductID       int      `json:"product_id"`
	ProductTitle    string   `json:"product_title"`
	ProductPrice    string   `json:"product_price"`
	ProductCategory string   `json:"product_category"`
	RiskLevel       string   `json:"risk_level"`
	RiskScore       int32    `json:"risk_score"`
	Decision        string   `json:"decision"`
	Blocked         bool     `json:"blocked"`
	Reasons         []string `json:"reasons"`
}

// ValidateIntegrationResponse represents the proto ValidateIntegrationResponse message.
type ValidateIntegrationResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

// GetAssessmentRequest represents the proto GetAssessmentRequest message.
type GetAssessmentRequest struct {
	ID string `json:"id"`
}

// GetAssessmentResponse represents the proto GetAssessmentResponse message.
type GetAssessmentResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

// ValidateIntegration handles an evaluation request.
func (h *IntegrationServiceHandler) ValidateIntegration(ctx context.Context, req *ValidateIntegrationRequest) (*ValidateIntegrationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id must be positive")
	}
	if req.ProductID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "product_id must be positive")
	}

	h.logger.Info("validating integration",
		slog.Int("user_id", req.UserID),
		slog.Int("product_id", req.ProductID),
	)

	result, err := h.validateIntegration.Execute(ctx, dto.ValidateIntegrationRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		if errors.Is(err, port.ErrRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		h.logger.Error("failed to validate integration",
			slog.Int("user_id", req.UserID),
			slog.Int("product_id", req.ProductID),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &ValidateIntegrationResponse{
		Assessment: toAssessmentMsg(result),
	}, nil
}

// GetAssessment handles a stored-assessment lookup.
func (h *IntegrationServiceHandler) GetAssessment(ctx context.Context, req *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	assessmentID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
	}

	result, err := h.getAssessment.Execute(ctx, dto.GetAssessmentRequest{
		AssessmentID: assessmentID,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetAssessmentResponse{
		Assessment: toAssessmentMsg(result),
	}, nil
}

func toAssessmentMsg(result dto.AssessmentResponse) *AssessmentMsg {
	return &AssessmentMsg{
		ID:              result.ID.String(),
		UserID:          result.UserID,
		UserName:        result.UserName,
		UserEmail:       result.UserEmail,
		UserCity:        result.UserCity,
		ProductID:       result.ProductID,
		ProductTitle:    result.ProductTitle,
		ProductPrice:    result.ProductPrice,
		ProductCategory: result.ProductCategory,
		RiskLevel:       result.RiskLevel,
		RiskScore:       int32(result.RiskScore),
		Decision:        result.Decision,
		Blocked:         result.Blocked,
		Reasons:         result.Reasons,
	}
}
