package logging

import (
	"regexp"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceparent extracts trace metadata from a traceparent header value.
// The all-zero trace and span IDs are invalid per the W3C recommendation.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	if m[2] == "00000000000000000000000000000000" || m[3] == "0000000000000000" {
		return traceContext{}, false
	}
	return traceContext{
		TraceID: m[2],
		SpanID:  m[3],
		Sampled: m[4] == "01",
	}, true
}

func traceFields(header string) []zap.Field {
	tc, ok := parseTraceparent(header)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", tc.TraceID),
		zap.String("spanId", tc.SpanID),
		zap.Bool("traceSampled", tc.Sampled),
	}
}

// requestLogger derives a logger tagged with the trace and request ID, when present.
func requestLogger(base *zap.Logger, traceparent, requestID string) *zap.Logger {
	fields := traceFields(traceparent)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
