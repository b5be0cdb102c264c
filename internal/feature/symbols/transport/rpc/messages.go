// Package rpc defines the wire contract of the symbol catalog gRPC service:
// message types, the JSON codec that carries them, the service descriptor and
// a typed client.
package rpc

// Symbol is the wire form of a catalog entry.
type Symbol struct {
	Id       string `json:"id"`
	Ticker   string `json:"ticker"`
	Exchange string `json:"exchange"`
	Active   bool   `json:"active"`
}

type PostSymbolRequest struct {
	Ticker   string `json:"ticker"`
	Exchange string `json:"exchange"`
}

type PostSymbolResponse struct{}

type GetSymbolsRequest struct{}

type GetSymbolsResponse struct {
	Symbols []*Symbol `json:"symbols"`
}

type GetActiveSymbolsRequest struct{}

type GetActiveSymbolsResponse struct {
	Symbols []*Symbol `json:"symbols"`
}

type ToggleSymbolActivationRequest struct {
	Ticker string `json:"ticker"`
}

type ToggleSymbolActivationResponse struct{}

func (x *PostSymbolRequest) GetTicker() string {
	if x != nil {
		return x.Ticker
	}
	return ""
}

func (x *PostSymbolRequest) GetExchange() string {
	if x != nil {
		return x.Exchange
	}
	return ""
}

func (x *ToggleSymbolActivationRequest) GetTicker() string {
	if x != nil {
		return x.Ticker
	}
	return ""
}
