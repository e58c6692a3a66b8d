package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDMetadataKey mirrors the X-Trace-ID header of the HTTP transport.
const traceIDMetadataKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a request logger carrying a trace id
// (taken from the incoming metadata or generated) and writes one access log
// entry per call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewUUIDGenerator().GenerateString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(utils.WithTraceID(ctx, traceID))

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
