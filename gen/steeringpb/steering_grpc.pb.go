// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: steering.proto

package steeringpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SteeringService_Generate_FullMethodName        = "/steering.SteeringService/Generate"
	SteeringService_MeanActivations_FullMethodName = "/steering.SteeringService/MeanActivations"
	SteeringService_Rate_FullMethodName            = "/steering.SteeringService/Rate"
)

// SteeringServiceClient is the client API for SteeringService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SteeringService is implemented by the Python inference process. It owns the
// frozen transformer (generation with additive activation injection, residual
// stream readout) and the LLM rubric evaluator.
type SteeringServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	MeanActivations(ctx context.Context, in *MeanActivationsRequest, opts ...grpc.CallOption) (*MeanActivationsResponse, error)
	Rate(ctx context.Context, in *RateRequest, opts ...grpc.CallOption) (*RateResponse, error)
}

type steeringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSteeringServiceClient(cc grpc.ClientConnInterface) SteeringServiceClient {
	return &steeringServiceClient{cc}
}

func (c *steeringServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateResponse)
	err := c.cc.Invoke(ctx, SteeringService_Generate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *steeringServiceClient) MeanActivations(ctx context.Context, in *MeanActivationsRequest, opts ...grpc.CallOption) (*MeanActivationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MeanActivationsResponse)
	err := c.cc.Invoke(ctx, SteeringService_MeanActivations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *steeringServiceClient) Rate(ctx context.Context, in *RateRequest, opts ...grpc.CallOption) (*RateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RateResponse)
	err := c.cc.Invoke(ctx, SteeringService_Rate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SteeringServiceServer is the server API for SteeringService service.
// All implementations must embed UnimplementedSteeringServiceServer
// for forward compatibility.
//
// SteeringService is implemented by the Python inference process. It owns the
// frozen transformer (generation with additive activation injection, residual
// stream readout) and the LLM rubric evaluator.
type SteeringServiceServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	MeanActivations(context.Context, *MeanActivationsRequest) (*MeanActivationsResponse, error)
	Rate(context.Context, *RateRequest) (*RateResponse, error)
	mustEmbedUnimplementedSteeringServiceServer()
}

// UnimplementedSteeringServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSteeringServiceServer struct{}

func (UnimplementedSteeringServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Generate not implemented")
}
func (UnimplementedSteeringServiceServer) MeanActivations(context.Context, *MeanActivationsRequest) (*MeanActivationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MeanActivations not implemented")
}
func (UnimplementedSteeringServiceServer) Rate(context.Context, *RateRequest) (*RateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Rate not implemented")
}
func (UnimplementedSteeringServiceServer) mustEmbedUnimplementedSteeringServiceServer() {}
func (UnimplementedSteeringServiceServer) testEmbeddedByValue()                         {}

// UnsafeSteeringServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SteeringServiceServer will
// result in compilation errors.
type UnsafeSteeringServiceServer interface {
	mustEmbedUnimplementedSteeringServiceServer()
}

func RegisterSteeringServiceServer(s grpc.ServiceRegistrar, srv SteeringServiceServer) {
	// If the following call pancis, it indicates UnimplementedSteeringServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SteeringService_ServiceDesc, srv)
}

func _SteeringService_Generate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SteeringServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SteeringService_Generate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SteeringServiceServer).Generate(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SteeringService_MeanActivations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MeanActivationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SteeringServiceServer).MeanActivations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SteeringService_MeanActivations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SteeringServiceServer).MeanActivations(ctx, req.(*MeanActivationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SteeringService_Rate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SteeringServiceServer).Rate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SteeringService_Rate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SteeringServiceServer).Rate(ctx, req.(*RateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SteeringService_ServiceDesc is the grpc.ServiceDesc for SteeringService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SteeringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "steering.SteeringService",
	HandlerType: (*SteeringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    _SteeringService_Generate_Handler,
		},
		{
			MethodName: "MeanActivations",
			Handler:    _SteeringService_MeanActivations_Handler,
		},
		{
			MethodName: "Rate",
			Handler:    _SteeringService_Rate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "steering.proto",
}
