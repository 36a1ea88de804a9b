// Package observability defines the tracing, metrics and structured logging
// interfaces used by the converter and its providers.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into a single injectable
// dependency. [Discard] is a Provider that drops everything and is what the
// converter uses when nothing is configured. A Provider can travel through a
// [context.Context] with [ContextWithObserver] and [ObserverFromContext]; the
// active [Span] travels with [ContextWithSpan] and [SpanFromContext].
//
// semconv.go holds the attribute keys, span names and metric names shared by
// every component, so log lines stay consistent across packages.
package observability
