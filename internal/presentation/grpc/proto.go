package grpc

// proto.go defines the gRPC server interface derived from
// validator/v1/integration.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the
// generated import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IntegrationServiceServer is the server API for IntegrationService.
type IntegrationServiceServer interface {
	ValidateIntegration(context.Context, *ValidateIntegrationRequest) (*ValidateIntegrationResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error)
	mustEmbedUnimplementedIntegrationServiceServer()
}

// UnimplementedIntegrationServiceServer provides forward-compatible default implementations.
type UnimplementedIntegrationServiceServer struct{}

func (UnimplementedIntegrationServiceServer) ValidateIntegration(context.Context, *ValidateIntegrationRequest) (*ValidateIntegrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateIntegration not implemented")
}
func (UnimplementedIntegrationServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedIntegrationServiceServer) mustEmbedUnimplementedIntegrationServiceServer() {}

// RegisterIntegrationServiceServer registers the IntegrationServiceServer with the gRPC server.
func RegisterIntegrationServiceServer(s *grpclib.Server, srv IntegrationServiceServer) {
	s.RegisterService(&_IntegrationService_serviceDesc, srv)
}

var _IntegrationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "validator.v1.IntegrationService",
	HandlerType: (*IntegrationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ValidateIntegration", Handler: _IntegrationService_ValidateIntegration_Handler},
		{MethodName: "GetAssessment", Handler: _IntegrationService_GetAssessment_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _IntegrationService_ValidateIntegration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ValidateIntegrationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IntegrationServiceServer).ValidateIntegration(ctx, req)
}

func _IntegrationService_GetAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetAssessmentRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IntegrationServiceServer).GetAssessment(ctx, req)
}
