package jwtmw

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type subjectKey struct{}

// SubjectFromContext returns the "sub" claim of the verified token, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey{}).(string)
	return sub, ok
}

// UnaryServerInterceptor returns an interceptor that requires a valid
// "authorization: Bearer <jwt>" header on the listed full method names.
// Other methods pass through untouched.
func UnaryServerInterceptor(secret string, protected ...string) grpc.UnaryServerInterceptor {
	guarded := make(map[string]struct{}, len(protected))
	for _, m := range protected {
		guarded[m] = struct{}{}
	}
	key := []byte(secret)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := guarded[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		// 1. Get authorization metadata
		tokenStr, ok := bearerToken(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		// 2. Parse and verify JWT signature (only HMAC allowed)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		// 3. Extract subject
		if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
			ctx = context.WithValue(ctx, subjectKey{}, sub)
		}
		return handler(ctx, req)
	}
}

func bearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	for _, v := range md.Get("authorization") {
		if strings.HasPrefix(v, "Bearer ") {
			return strings.TrimPrefix(v, "Bearer "), true
		}
	}
	return "", false
}
