// Package grpcserver builds the gRPC server and its unary interceptor chain.
package grpcserver

import (
	"context"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every call with its method, status code and duration.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		st := status.Convert(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", st.Code().String()),
			zap.Duration("duration", time.Since(start)),
		}
		switch st.Code() {
		case codes.OK:
			log.Info("gRPC request completed", fields...)
		case codes.Internal, codes.Unknown, codes.DataLoss:
			log.Error("gRPC request failed", append(fields, zap.String("error_message", st.Message()))...)
		default:
			log.Warn("gRPC request rejected", append(fields, zap.String("error_message", st.Message()))...)
		}
		return resp, err
	}
}

// RecoveryInterceptor turns a panic in a handler into codes.Internal.
func RecoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("gRPC request panicked",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// Limiter reports whether one more call fits in the current window.
type Limiter interface {
	Allow() (bool, time.Duration)
}

// RateLimitInterceptor rejects calls over the limit with codes.ResourceExhausted.
func RateLimitInterceptor(limiter Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if ok, retryAfter := limiter.Allow(); !ok {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded, retry after %s", retryAfter.Round(time.Millisecond))
		}
		return handler(ctx, req)
	}
}
