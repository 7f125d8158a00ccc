package metrics

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor records the count and latency of every unary RPC
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		RPCDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		RPCsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()

		return resp, err
	}
}
