package observability

import "context"

// Discard is a Provider that records nothing.
var Discard Provider = discard{}

type discard struct{}

var _ Provider = discard{}

func (discard) StartSpan(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, discardSpan{}
}

func (discard) Counter(string) Counter     { return discardInstrument{} }
func (discard) Histogram(string) Histogram { return discardInstrument{} }

func (discard) Trace(context.Context, string, ...Attribute) {}
func (discard) Debug(context.Context, string, ...Attribute) {}
func (discard) Info(context.Context, string, ...Attribute)  {}
func (discard) Warn(context.Context, string, ...Attribute)  {}
func (discard) Error(context.Context, string, ...Attribute) {}

type discardSpan struct{}

func (discardSpan) End()                          {}
func (discardSpan) SetAttributes(...Attribute)    {}
func (discardSpan) SetStatus(StatusCode, string)  {}
func (discardSpan) RecordError(error)             {}
func (discardSpan) AddEvent(string, ...Attribute) {}

type discardInstrument struct{}

func (discardInstrument) Add(context.Context, int64, ...Attribute)      {}
func (discardInstrument) Record(context.Context, float64, ...Attribute) {}
