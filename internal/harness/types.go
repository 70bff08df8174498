package harness

import "tickerdeck/internal/controller"

// TraceEvent records one script step and the view state it produced.
type TraceEvent struct {
	Key     string `json:"key"`
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

// RecordSnapshot is the stored-record surface covered by golden files.
// Timestamps are deliberately excluded; the trace cares about identity and
// content, not clock readings.
type RecordSnapshot struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
	Notes  string `json:"notes,omitempty"`
}

// FinalState captures where the script ended up.
type FinalState struct {
	State   string           `json:"state"`
	Message string           `json:"message,omitempty"`
	Records []RecordSnapshot `json:"records"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: true unless an expect clause failed.
	Pass bool `json:"pass"`

	// Trace lists every step with the state it produced, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expect-clause mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the state after the last step.
	Final FinalState `json:"final"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
	}
}

// AddError adds an expectation mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddStep appends one trace event for a processed step.
func (r *Result) AddStep(label string, v controller.View) {
	r.Trace = append(r.Trace, TraceEvent{
		Key:     label,
		State:   string(v.State),
		Message: v.Message.Text,
	})
}
