package grpc_control

import (
	"context"
	"time"

	"market-viewer/src/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// logCalls logs every unary call with its status code and latency.
func logCalls(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("gRPC %s -> %s (%s)", info.FullMethod, status.Code(err), time.Since(start))
		return resp, err
	}
}
