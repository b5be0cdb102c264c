// Package handler adapts the symbol usecase to the gRPC wire contract.
package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"symbol_catalog/internal/feature/symbols/transport/rpc"
	"symbol_catalog/internal/feature/symbols/usecase"
	"symbol_catalog/internal/shared/result"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SymbolUsecase は銘柄カタログのユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	CreateSymbol(ctx context.Context, dto usecase.CreateSymbolDto) result.Result[usecase.SymbolDto]
	GetSymbols(ctx context.Context) result.Result[[]usecase.SymbolDto]
	GetActiveSymbols(ctx context.Context) result.Result[[]usecase.SymbolDto]
	ToggleSymbolActivation(ctx context.Context, ticker string) result.Result[bool]
}

// SymbolHandler は銘柄カタログのgRPCリクエストを処理します。
// ビジネスロジックは持たず、Resultをレスポンスまたはステータスへ変換するだけです。
type SymbolHandler struct {
	rpc.UnimplementedSymbolServiceServer

	uc       SymbolUsecase
	validate *validator.Validate
}

var _ rpc.SymbolServiceServer = (*SymbolHandler)(nil)

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{
		uc:       uc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PostSymbol は銘柄を登録します。入力が不正な場合はユースケースを呼ばずに InvalidArgument を返します。
func (h *SymbolHandler) PostSymbol(ctx context.Context, req *rpc.PostSymbolRequest) (*rpc.PostSymbolResponse, error) {
	dto := usecase.CreateSymbolDto{Ticker: req.GetTicker(), Exchange: req.GetExchange()}
	if err := h.validate.Struct(dto); err != nil {
		return nil, status.Error(codes.InvalidArgument, describeValidation(err))
	}

	res := h.uc.CreateSymbol(ctx, dto)
	if !res.IsSuccess() {
		return nil, statusFromFailure(res.Kind(), res.Error())
	}
	return &rpc.PostSymbolResponse{}, nil
}

// GetSymbols は全銘柄をユースケースの返した順序で返します。
func (h *SymbolHandler) GetSymbols(ctx context.Context, _ *rpc.GetSymbolsRequest) (*rpc.GetSymbolsResponse, error) {
	res := h.uc.GetSymbols(ctx)
	if !res.IsSuccess() {
		return nil, statusFromFailure(res.Kind(), res.Error())
	}
	return &rpc.GetSymbolsResponse{Symbols: toWire(res.Value())}, nil
}

// GetActiveSymbols はアクティブな銘柄をユースケースの返した順序で返します。
func (h *SymbolHandler) GetActiveSymbols(ctx context.Context, _ *rpc.GetActiveSymbolsRequest) (*rpc.GetActiveSymbolsResponse, error) {
	res := h.uc.GetActiveSymbols(ctx)
	if !res.IsSuccess() {
		return nil, statusFromFailure(res.Kind(), res.Error())
	}
	return &rpc.GetActiveSymbolsResponse{Symbols: toWire(res.Value())}, nil
}

// ToggleSymbolActivation は銘柄のアクティブ状態を反転します。
func (h *SymbolHandler) ToggleSymbolActivation(ctx context.Context, req *rpc.ToggleSymbolActivationRequest) (*rpc.ToggleSymbolActivationResponse, error) {
	res := h.uc.ToggleSymbolActivation(ctx, req.GetTicker())
	if !res.IsSuccess() {
		return nil, statusFromFailure(res.Kind(), res.Error())
	}
	return &rpc.ToggleSymbolActivationResponse{}, nil
}

// statusFromFailure maps a failed Result onto a gRPC status, keeping the message verbatim.
func statusFromFailure(kind result.Kind, e result.Error) error {
	switch kind {
	case result.BadRequest:
		return status.Error(codes.FailedPrecondition, e.Message)
	case result.SomethingWentWrong:
		return status.Error(codes.Internal, e.Message)
	default:
		// Kind is closed; an unknown value is a programming error and is not exposed as a business failure.
		return status.Error(codes.Internal, e.Message)
	}
}

func toWire(dtos []usecase.SymbolDto) []*rpc.Symbol {
	out := make([]*rpc.Symbol, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, &rpc.Symbol{
			Id:       d.ID.String(),
			Ticker:   d.Ticker,
			Exchange: d.Exchange,
			Active:   d.Active,
		})
	}
	return out
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "invalid symbol: " + strings.Join(parts, "; ")
}
