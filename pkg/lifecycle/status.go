// Package lifecycle holds the work-order status set and the transition
// rules that gate which console actions are available per status.
package lifecycle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status of a work order. The wire format is lowercase (what the backend
// stores); Label returns the canonical display casing. Parsing folds case
// because older backend rows carry mixed casing.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDraft     Status = "draft"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusDraft,
	StatusExecuting,
	StatusCompleted,
	StatusFailed,
}

// Parse returns the Status matching s, case-insensitively. The legacy
// "executed" value some execute responses carry maps to executing.
func Parse(s string) (Status, error) {
	folded := Status(strings.ToLower(strings.TrimSpace(s)))
	if folded == "executed" {
		return StatusExecuting, nil
	}
	for _, status := range allStatuses {
		if folded == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Statuses returns every valid status, in display order.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	_, err := Parse(string(s))
	return err == nil
}

// Label returns the canonical display casing, e.g. "Pending".
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether no user-initiated transition leaves s.
// Re-opening/editing a terminal order remains possible but does not
// re-enter the approval flow automatically.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		*s = ""
		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		// Unknown statuses are preserved rather than rejected so that a
		// newer backend does not break older clients on read.
		*s = Status(strings.ToLower(raw))
		return nil
	}

	*s = parsed
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
