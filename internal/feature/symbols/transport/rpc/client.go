package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// SymbolServiceClient is the client API for the symbol service.
type SymbolServiceClient interface {
	PostSymbol(ctx context.Context, in *PostSymbolRequest, opts ...grpc.CallOption) (*PostSymbolResponse, error)
	GetSymbols(ctx context.Context, in *GetSymbolsRequest, opts ...grpc.CallOption) (*GetSymbolsResponse, error)
	GetActiveSymbols(ctx context.Context, in *GetActiveSymbolsRequest, opts ...grpc.CallOption) (*GetActiveSymbolsResponse, error)
	ToggleSymbolActivation(ctx context.Context, in *ToggleSymbolActivationRequest, opts ...grpc.CallOption) (*ToggleSymbolActivationResponse, error)
}

type symbolServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSymbolServiceClient returns a client that sends every call with the JSON codec.
func NewSymbolServiceClient(cc grpc.ClientConnInterface) SymbolServiceClient {
	return &symbolServiceClient{cc: cc}
}

func (c *symbolServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *symbolServiceClient) PostSymbol(ctx context.Context, in *PostSymbolRequest, opts ...grpc.CallOption) (*PostSymbolResponse, error) {
	out := new(PostSymbolResponse)
	if err := c.invoke(ctx, SymbolService_PostSymbol_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *symbolServiceClient) GetSymbols(ctx context.Context, in *GetSymbolsRequest, opts ...grpc.CallOption) (*GetSymbolsResponse, error) {
	out := new(GetSymbolsResponse)
	if err := c.invoke(ctx, SymbolService_GetSymbols_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *symbolServiceClient) GetActiveSymbols(ctx context.Context, in *GetActiveSymbolsRequest, opts ...grpc.CallOption) (*GetActiveSymbolsResponse, error) {
	out := new(GetActiveSymbolsResponse)
	if err := c.invoke(ctx, SymbolService_GetActiveSymbols_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *symbolServiceClient) ToggleSymbolActivation(ctx context.Context, in *ToggleSymbolActivationRequest, opts ...grpc.CallOption) (*ToggleSymbolActivationResponse, error) {
	out := new(ToggleSymbolActivationResponse)
	if err := c.invoke(ctx, SymbolService_ToggleSymbolActivation_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
