package lifecycle

// Action is a user-initiated console action on a work order.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionExecute Action = "execute"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
)

// Machine is a transition table over statuses. Transitions out of
// executing (to completed/failed) are backend-driven and reflected on
// reload, but they are listed so CanTransition accepts what the backend
// reports.
type Machine struct {
	transitions map[Status][]Status
}

// WorkOrders is the state machine for VM work orders.
var WorkOrders = Machine{transitions: map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusExecuting},
	StatusExecuting: {StatusCompleted, StatusFailed},
}}

// VNIWorkOrders adds the draft state VNI orders can be parked in before
// submission.
var VNIWorkOrders = Machine{transitions: map[Status][]Status{
	StatusDraft:     {StatusPending},
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusExecuting},
	StatusExecuting: {StatusCompleted, StatusFailed},
}}

// CanTransition reports whether from -> to is a legal transition.
func (m Machine) CanTransition(from, to Status) bool {
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next returns the statuses reachable from s.
func (m Machine) Next(s Status) []Status {
	out := make([]Status, len(m.transitions[s]))
	copy(out, m.transitions[s])
	return out
}

// AllowedActions returns the actions the console enables for an order in
// status s. Approve/Reject are only offered while pending; Execute only
// while approved. Edit and Delete stay available in terminal states (an
// order can be corrected or cleaned up) but not while executing.
func (m Machine) AllowedActions(s Status) []Action {
	var actions []Action

	switch s {
	case StatusPending:
		actions = append(actions, ActionApprove, ActionReject)
	case StatusApproved:
		actions = append(actions, ActionExecute)
	}

	if s != StatusExecuting {
		actions = append(actions, ActionEdit, ActionDelete)
	}

	return actions
}

// Allows reports whether action is enabled for status s.
func (m Machine) Allows(s Status, action Action) bool {
	for _, a := range m.AllowedActions(s) {
		if a == action {
			return true
		}
	}
	return false
}
