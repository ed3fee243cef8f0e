// Package logger defines the observability contract the solver core uses
// to optionally report events as it runs a solve.
package logger

// RunLogger defines the interface for logging solver-run events. It is an
// optional observability hook: nothing on the Solver's correctness path
// depends on a RunLogger being present.
type RunLogger interface {
	// Log records one solver-run event.
	// runID: identifier for the overall solve invocation.
	// stateID: a short identifier for the State the event concerns (e.g.
	// its hash), not globally unique across runs.
	// kind: the CardKind involved, or "" for run-level events.
	// eventType: type of event (e.g. "Explore", "RequirementsSatisfied",
	// "ActionsExhausted", "RunComplete").
	// details: additional context, serialized to JSON by implementations.
	Log(runID, stateID, kind, eventType string, details map[string]interface{})

	// Close releases any resources held by the logger (e.g. file handles).
	Close()
}

// NopLogger is a RunLogger that discards every event. It is the Solver's
// zero-value default, so attaching a logger is always optional.
type NopLogger struct{}

// Log implements RunLogger by doing nothing.
func (NopLogger) Log(runID, stateID, kind, eventType string, details map[string]interface{}) {}

// Close implements RunLogger by doing nothing.
func (NopLogger) Close() {}
