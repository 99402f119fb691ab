package domain

import "time"

// Action is a cart command keyword.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionRemove Action = "remove"
	ActionDone   Action = "done"
)

// Command is one parsed cart instruction, whether typed at the prompt or
// read from a session script.
type Command struct {
	Action   Action
	Product  string
	Quantity int
	Discount float64
}

// ReceiptExpectation defines JSONPath checks against the JSON receipt.
type ReceiptExpectation struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}

// Session is a scripted shopping run (Git-friendly YAML on disk).
type Session struct {
	Name   string
	Steps  []Command
	Expect map[string]ReceiptExpectation
}

// SessionRef is a lightweight reference to a session file on disk.
type SessionRef struct {
	Name string
	Path string
}

// StepResult is the outcome of a single replayed command.
type StepResult struct {
	Index   int
	Command Command
	OK      bool
	Message string
}

// AssertionResult is the output of a single receipt expectation.
type AssertionResult struct {
	Name    string
	Passed  bool
	Message string
}

// ReplayResult is the outcome of replaying a session against a fresh cart.
type ReplayResult struct {
	ID          string
	SessionName string
	SessionPath string

	StartedAt time.Time
	EndedAt   time.Time

	Steps      []StepResult
	Receipt    Receipt
	Assertions []AssertionResult
}

// Failures counts failed steps and failed assertions.
func (r ReplayResult) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if !s.OK {
			n++
		}
	}
	for _, a := range r.Assertions {
		if !a.Passed {
			n++
		}
	}
	return n
}
