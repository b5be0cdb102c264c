package grpcserver

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Metrics holds the per-method RPC collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symbols",
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total gRPC requests by method and status code",
		}, []string{"method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "symbols",
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "gRPC request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	for _, c := range []prometheus.Collector{m.RequestsTotal, m.RequestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// UnaryServerInterceptor records a count and a latency sample for every call.
// A call that panics is counted as Internal; the panic keeps unwinding to the recovery interceptor.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		code := codes.Internal
		defer func() {
			m.RequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
			m.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		}()

		resp, err := handler(ctx, req)
		code = status.Code(err)
		return resp, err
	}
}
