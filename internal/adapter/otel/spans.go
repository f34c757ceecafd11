package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "finserv"

// StartRunSpan starts a span for an agent run.
func StartRunSpan(ctx context.Context, runID, moduleID, agentID string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("module.id", moduleID),
			attribute.String("agent.id", agentID),
		),
	)
}
