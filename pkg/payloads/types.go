package payloads

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

/*
The console backend assigns integer ids but nothing client-side depends on
that, so ids are treated as opaque strings. They sometimes come back as JSON
numbers, so unmarshalling has to accept both representations.
*/
type ID string

func (id ID) String() string {
	return string(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var stringValue string
	if err := json.Unmarshal(data, &stringValue); err == nil {
		*id = ID(stringValue)
		return nil
	}

	var intValue int64
	if err := json.Unmarshal(data, &intValue); err != nil {
		return err
	}

	*id = ID(strconv.FormatInt(intValue, 10))
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

/*
Timestamp handles the backend's bare ISO format ("2006-01-02T15:04:05.999999")
which datetime.isoformat() emits without a timezone, as well as proper RFC 3339.
*/
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}

	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Priority of a VNI work order.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// UnmarshalJSON folds case and maps the legacy "medium" value to "normal".
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch Priority(strings.ToLower(raw)) {
	case PriorityLow:
		*p = PriorityLow
	case PriorityNormal, Priority("medium"):
		*p = PriorityNormal
	case PriorityHigh:
		*p = PriorityHigh
	case PriorityCritical:
		*p = PriorityCritical
	default:
		*p = Priority(raw)
	}

	return nil
}
