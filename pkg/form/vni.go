package form

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/netconfig"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

// networkInputs are the fields whose change re-runs the network validator.
var networkInputs = map[string]bool{
	"gateway":  true,
	"first_ip": true,
	"last_ip":  true,
	"cidr":     true,
}

// VNIState is the VNI work-order wizard and edit form state. NumberOfIPs is
// derived from the range bounds, never edited directly; Validation is the
// current network verdict (nil while inputs are incomplete).
type VNIState struct {
	SessionID uuid.UUID
	Step      int
	Fields    map[string]string

	Validation *netconfig.Result

	Submitting  bool
	SubmitError string
	Completed   bool
}

// NewVNI returns the initial VNI wizard state.
func NewVNI() VNIState {
	id, _ := uuid.NewV4()
	return VNIState{
		SessionID: id,
		Fields: map[string]string{
			"priority": string(payloads.PriorityNormal),
		},
	}
}

func (s VNIState) clone() VNIState {
	fields := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	s.Fields = fields
	return s
}

// Apply is the reducer for the VNI form. Only SetField, the step and the
// submit actions apply here; disk/NIC and inventory actions are no-ops.
func (s VNIState) Apply(action Action) VNIState {
	next := s.clone()

	switch a := action.(type) {
	case SetField:
		next.Fields[a.Name] = a.Value

		if a.Name == "first_ip" || a.Name == "last_ip" {
			next.Fields["number_of_ips"] = itoa(netconfig.IPCount(
				next.Fields["first_ip"], next.Fields["last_ip"]))
		}

		if networkInputs[a.Name] {
			next.Validation = netconfig.Validate(
				next.Fields["gateway"],
				next.Fields["first_ip"],
				next.Fields["last_ip"],
				next.Fields["cidr"],
			)
		}

	case Next:
		if next.StepValid(next.Step) && next.Step < len(VNISteps)-1 {
			next.Step++
		}

	case Back:
		if next.Step > 0 {
			next.Step--
		}

	case Reset:
		return NewVNI()

	case SubmitStarted:
		next.Submitting = true
		next.SubmitError = ""

	case SubmitFailed:
		next.Submitting = false
		next.SubmitError = a.Err

	case SubmitSucceeded:
		next.Submitting = false
		next.SubmitError = ""
		next.Completed = true
	}

	return next
}

// StepValid reports whether step's required fields are present and
// well-typed.
func (s VNIState) StepValid(step int) bool {
	if step < 0 || step >= len(VNISteps) {
		return false
	}
	return VNISteps[step].Valid(s.Fields)
}

// Submittable is the submit gate. A warning verdict (gateway inside the
// range) does not block; only an error-severity verdict or incomplete
// steps do.
func (s VNIState) Submittable() bool {
	if s.Submitting || s.Completed {
		return false
	}

	for i := range VNISteps {
		if !s.StepValid(i) {
			return false
		}
	}

	if s.Validation != nil && s.Validation.Severity == netconfig.SeverityError {
		return false
	}

	return true
}

// Order is the VNI work-order payload built from the current fields.
func (s VNIState) Order() payloads.VNIWorkOrder {
	count, _ := CoerceInt(s.Fields["number_of_ips"], 0)

	order := payloads.VNIWorkOrder{
		Owner:       s.Fields["owner"],
		RequestedBy: s.Fields["requested_by"],
		Project:     s.Fields["project"],
		Description: s.Fields["description"],
		Priority:    payloads.Priority(s.Fields["priority"]),

		T0Gateway:   s.Fields["t0_gw"],
		T1Gateway:   s.Fields["t1_gw"],
		VNIName:     s.Fields["vni_name"],
		CIDR:        s.Fields["cidr"],
		SubnetMask:  s.Fields["subnet_mask"],
		Gateway:     s.Fields["gateway"],
		FirstIP:     s.Fields["first_ip"],
		LastIP:      s.Fields["last_ip"],
		NumberOfIPs: count,

		Notes:      s.Fields["notes"],
		AssignedTo: s.Fields["assigned_to"],
	}

	if deadline := s.Fields["deadline"]; deadline != "" {
		if parsed, err := time.Parse("2006-01-02", deadline); err == nil {
			order.Deadline = payloads.Timestamp{Time: parsed}
		}
	}

	return order
}

// LoadVNIOrder seeds the edit form from an existing VNI work order.
func LoadVNIOrder(order payloads.VNIWorkOrder) VNIState {
	s := NewVNI()

	s.Fields["owner"] = order.Owner
	s.Fields["requested_by"] = order.RequestedBy
	s.Fields["project"] = order.Project
	s.Fields["description"] = order.Description
	s.Fields["priority"] = string(order.Priority)
	s.Fields["notes"] = order.Notes
	s.Fields["assigned_to"] = order.AssignedTo

	if !order.Deadline.IsZero() {
		s.Fields["deadline"] = order.Deadline.Format("2006-01-02")
	}

	s.Fields["t0_gw"] = order.T0Gateway
	s.Fields["t1_gw"] = order.T1Gateway
	s.Fields["vni_name"] = order.VNIName
	s.Fields["cidr"] = order.CIDR
	s.Fields["subnet_mask"] = order.SubnetMask
	s.Fields["gateway"] = order.Gateway
	s.Fields["first_ip"] = order.FirstIP
	s.Fields["last_ip"] = order.LastIP
	s.Fields["number_of_ips"] = itoa(order.NumberOfIPs)

	s.Validation = netconfig.Validate(order.Gateway, order.FirstIP, order.LastIP, order.CIDR)

	return s
}
