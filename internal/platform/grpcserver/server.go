package grpcserver

import (
	jwtmw "symbol_catalog/internal/platform/jwt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Options configures New. Zero values disable the optional interceptors.
type Options struct {
	Log     *zap.Logger
	Metrics *Metrics
	Limiter Limiter

	// JWTSecret enables token checks on ProtectedMethods.
	JWTSecret        string
	ProtectedMethods []string
}

// New builds a gRPC server whose interceptors run in this order:
// logging, recovery, metrics, rate limit, auth.
// Server reflection is not registered: messages use the JSON codec and have no
// protobuf file descriptors to describe.
func New(opts Options) *grpc.Server {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	chain := []grpc.UnaryServerInterceptor{LoggingInterceptor(log), RecoveryInterceptor(log)}
	if opts.Metrics != nil {
		chain = append(chain, opts.Metrics.UnaryServerInterceptor())
	}
	if opts.Limiter != nil {
		chain = append(chain, RateLimitInterceptor(opts.Limiter))
	}
	if opts.JWTSecret != "" {
		chain = append(chain, jwtmw.UnaryServerInterceptor(opts.JWTSecret, opts.ProtectedMethods...))
	}
	return grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
}
