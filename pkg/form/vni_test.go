package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itaas-cloud/vsphere-console-sdk/pkg/netconfig"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
)

func fillVNIGeneral(s VNIState) VNIState {
	s = s.Apply(SetField{Name: "owner", Value: "jsmith"})
	s = s.Apply(SetField{Name: "requested_by", Value: "network-team"})
	s = s.Apply(SetField{Name: "project", Value: "edge-rollout"})
	s = s.Apply(SetField{Name: "description", Value: "edge segment for the rollout"})
	return s
}

func fillVNIConfig(s VNIState) VNIState {
	s = s.Apply(SetField{Name: "t0_gw", Value: "t0-edge"})
	s = s.Apply(SetField{Name: "t1_gw", Value: "t1-edge"})
	s = s.Apply(SetField{Name: "vni_name", Value: "vni-edge-01"})
	s = s.Apply(SetField{Name: "cidr", Value: "192.168.1.0/24"})
	s = s.Apply(SetField{Name: "subnet_mask", Value: "255.255.255.0"})
	s = s.Apply(SetField{Name: "gateway", Value: "192.168.1.254"})
	s = s.Apply(SetField{Name: "first_ip", Value: "192.168.1.10"})
	s = s.Apply(SetField{Name: "last_ip", Value: "192.168.1.20"})
	return s
}

func TestVNIWizardSteps(t *testing.T) {
	s := NewVNI()

	t.Run("priority defaults to normal", func(t *testing.T) {
		assert.Equal(t, "normal", s.Fields["priority"])
	})

	t.Run("general step requires its fields", func(t *testing.T) {
		assert.False(t, s.StepValid(0))
		assert.True(t, fillVNIGeneral(s).StepValid(0))
	})

	t.Run("deadline stays optional", func(t *testing.T) {
		assert.True(t, fillVNIGeneral(s).StepValid(0))
		withDeadline := fillVNIGeneral(s).Apply(SetField{Name: "deadline", Value: "2026-09-30"})
		assert.True(t, withDeadline.StepValid(0))
	})

	t.Run("config step requires network fields", func(t *testing.T) {
		assert.False(t, fillVNIGeneral(s).StepValid(1))
		assert.True(t, fillVNIConfig(fillVNIGeneral(s)).StepValid(1))
	})
}

func TestVNINumberOfIPsDerivation(t *testing.T) {
	s := fillVNIConfig(NewVNI())

	assert.Equal(t, "11", s.Fields["number_of_ips"])

	t.Run("recomputed on bound change", func(t *testing.T) {
		widened := s.Apply(SetField{Name: "last_ip", Value: "192.168.1.30"})
		assert.Equal(t, "21", widened.Fields["number_of_ips"])
	})

	t.Run("reversed range derives zero", func(t *testing.T) {
		reversed := s.Apply(SetField{Name: "first_ip", Value: "192.168.1.200"})
		assert.Equal(t, "0", reversed.Fields["number_of_ips"])
		assert.False(t, reversed.StepValid(1))
	})
}

func TestVNIValidationReactivity(t *testing.T) {
	s := NewVNI()

	t.Run("incomplete inputs give no verdict", func(t *testing.T) {
		partial := s.Apply(SetField{Name: "gateway", Value: "192.168.1.254"})
		assert.Nil(t, partial.Validation)
	})

	s = fillVNIConfig(s)

	t.Run("valid configuration", func(t *testing.T) {
		require.NotNil(t, s.Validation)
		assert.True(t, s.Validation.IsValid)
		assert.Equal(t, netconfig.SeveritySuccess, s.Validation.Severity)
	})

	t.Run("cidr change re-runs the validator", func(t *testing.T) {
		moved := s.Apply(SetField{Name: "cidr", Value: "10.0.0.0/24"})

		require.NotNil(t, moved.Validation)
		assert.Equal(t, netconfig.SeverityError, moved.Validation.Severity)
	})

	t.Run("gateway inside range warns", func(t *testing.T) {
		warned := s.Apply(SetField{Name: "gateway", Value: "192.168.1.15"})

		require.NotNil(t, warned.Validation)
		assert.Equal(t, netconfig.SeverityWarning, warned.Validation.Severity)
	})
}

func TestVNISubmittable(t *testing.T) {
	complete := fillVNIConfig(fillVNIGeneral(NewVNI()))

	t.Run("complete form submits", func(t *testing.T) {
		assert.True(t, complete.Submittable())
	})

	t.Run("error verdict blocks", func(t *testing.T) {
		broken := complete.Apply(SetField{Name: "gateway", Value: "10.0.0.1"})
		assert.False(t, broken.Submittable())
	})

	t.Run("warning verdict does not block", func(t *testing.T) {
		warned := complete.Apply(SetField{Name: "gateway", Value: "192.168.1.15"})

		require.NotNil(t, warned.Validation)
		assert.Equal(t, netconfig.SeverityWarning, warned.Validation.Severity)
		assert.True(t, warned.Submittable())
	})

	t.Run("missing general field blocks", func(t *testing.T) {
		missing := complete.Apply(SetField{Name: "owner", Value: ""})
		assert.False(t, missing.Submittable())
	})

	t.Run("failed submission keeps the draft", func(t *testing.T) {
		failed := complete.Apply(SubmitStarted{}).Apply(SubmitFailed{Err: "segment already exists"})

		assert.Equal(t, "segment already exists", failed.SubmitError)
		assert.Equal(t, "vni-edge-01", failed.Fields["vni_name"])
		assert.True(t, failed.Submittable())
	})
}

func TestVNIOrder(t *testing.T) {
	s := fillVNIConfig(fillVNIGeneral(NewVNI())).
		Apply(SetField{Name: "deadline", Value: "2026-09-30"})

	order := s.Order()

	assert.Equal(t, "jsmith", order.Owner)
	assert.Equal(t, "vni-edge-01", order.VNIName)
	assert.Equal(t, "192.168.1.0/24", order.CIDR)
	assert.Equal(t, 11, order.NumberOfIPs)
	assert.Equal(t, payloads.PriorityNormal, order.Priority)
	assert.Equal(t, "2026-09-30", order.Deadline.Format("2006-01-02"))
}

func TestLoadVNIOrder(t *testing.T) {
	order := payloads.VNIWorkOrder{
		Owner:       "jsmith",
		RequestedBy: "network-team",
		Project:     "edge-rollout",
		Description: "edge segment",
		Priority:    payloads.PriorityHigh,
		T0Gateway:   "t0-edge",
		T1Gateway:   "t1-edge",
		VNIName:     "vni-edge-01",
		CIDR:        "192.168.1.0/24",
		SubnetMask:  "255.255.255.0",
		Gateway:     "192.168.1.254",
		FirstIP:     "192.168.1.10",
		LastIP:      "192.168.1.20",
		NumberOfIPs: 11,
	}

	s := LoadVNIOrder(order)

	assert.Equal(t, "11", s.Fields["number_of_ips"])
	require.NotNil(t, s.Validation)
	assert.True(t, s.Validation.IsValid)
	assert.True(t, s.Submittable())
}
