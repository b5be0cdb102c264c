package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "symbols.v1.SymbolService"

// Full method names, as seen by interceptors.
const (
	SymbolService_PostSymbol_FullMethodName             = "/" + ServiceName + "/PostSymbol"
	SymbolService_GetSymbols_FullMethodName             = "/" + ServiceName + "/GetSymbols"
	SymbolService_GetActiveSymbols_FullMethodName       = "/" + ServiceName + "/GetActiveSymbols"
	SymbolService_ToggleSymbolActivation_FullMethodName = "/" + ServiceName + "/ToggleSymbolActivation"
)

// SymbolServiceServer is the server API for the symbol service.
type SymbolServiceServer interface {
	PostSymbol(context.Context, *PostSymbolRequest) (*PostSymbolResponse, error)
	GetSymbols(context.Context, *GetSymbolsRequest) (*GetSymbolsResponse, error)
	GetActiveSymbols(context.Context, *GetActiveSymbolsRequest) (*GetActiveSymbolsResponse, error)
	ToggleSymbolActivation(context.Context, *ToggleSymbolActivationRequest) (*ToggleSymbolActivationResponse, error)
}

// UnimplementedSymbolServiceServer answers every method with codes.Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedSymbolServiceServer struct{}

func (UnimplementedSymbolServiceServer) PostSymbol(context.Context, *PostSymbolRequest) (*PostSymbolResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PostSymbol not implemented")
}

func (UnimplementedSymbolServiceServer) GetSymbols(context.Context, *GetSymbolsRequest) (*GetSymbolsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSymbols not implemented")
}

func (UnimplementedSymbolServiceServer) GetActiveSymbols(context.Context, *GetActiveSymbolsRequest) (*GetActiveSymbolsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveSymbols not implemented")
}

func (UnimplementedSymbolServiceServer) ToggleSymbolActivation(context.Context, *ToggleSymbolActivationRequest) (*ToggleSymbolActivationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleSymbolActivation not implemented")
}

// RegisterSymbolServiceServer registers srv on s.
func RegisterSymbolServiceServer(s grpc.ServiceRegistrar, srv SymbolServiceServer) {
	s.RegisterService(&SymbolService_ServiceDesc, srv)
}

func _SymbolService_PostSymbol_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PostSymbolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SymbolServiceServer).PostSymbol(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SymbolService_PostSymbol_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SymbolServiceServer).PostSymbol(ctx, req.(*PostSymbolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SymbolService_GetSymbols_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSymbolsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SymbolServiceServer).GetSymbols(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SymbolService_GetSymbols_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SymbolServiceServer).GetSymbols(ctx, req.(*GetSymbolsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SymbolService_GetActiveSymbols_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetActiveSymbolsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SymbolServiceServer).GetActiveSymbols(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SymbolService_GetActiveSymbols_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SymbolServiceServer).GetActiveSymbols(ctx, req.(*GetActiveSymbolsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SymbolService_ToggleSymbolActivation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ToggleSymbolActivationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SymbolServiceServer).ToggleSymbolActivation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SymbolService_ToggleSymbolActivation_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SymbolServiceServer).ToggleSymbolActivation(ctx, req.(*ToggleSymbolActivationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SymbolService_ServiceDesc is the grpc.ServiceDesc for the symbol service.
var SymbolService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SymbolServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PostSymbol", Handler: _SymbolService_PostSymbol_Handler},
		{MethodName: "GetSymbols", Handler: _SymbolService_GetSymbols_Handler},
		{MethodName: "GetActiveSymbols", Handler: _SymbolService_GetActiveSymbols_Handler},
		{MethodName: "ToggleSymbolActivation", Handler: _SymbolService_ToggleSymbolActivation_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "symbols/v1/symbols.proto",
}
