// Package form holds the reducer-style state behind the creation wizards
// and edit forms. Every mutation is a pure (state, action) -> state
// transition so that validation, reconciliation and submit gating are
// deterministic and testable without a UI attached.
package form

import (
	"strconv"
	"strings"
)

// FieldKind selects the coercion applied to a raw field value.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindFloat
)

// FieldRule is one declarative validation entry of a wizard step. Numeric
// rules coerce the raw input and compare against Min; string rules only
// check presence when required.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
	Min      float64
}

// Valid reports whether raw satisfies the rule.
func (r FieldRule) Valid(raw string) bool {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return !r.Required
	}

	switch r.Kind {
	case KindInt:
		_, ok := CoerceInt(raw, int(r.Min))
		return ok
	case KindFloat:
		_, ok := CoerceFloat(raw, r.Min)
		return ok
	}

	return true
}

// StepSchema is the validation schema for one wizard step.
type StepSchema struct {
	Title  string
	Fields []FieldRule
}

// Valid reports whether every rule of the step passes against values.
func (s StepSchema) Valid(values map[string]string) bool {
	for _, rule := range s.Fields {
		if !rule.Valid(values[rule.Name]) {
			return false
		}
	}
	return true
}

// WorkOrderSteps is the VM work-order wizard: general info, resources,
// review. The review step has no inputs of its own.
var WorkOrderSteps = []StepSchema{
	{
		Title: "General Info",
		Fields: []FieldRule{
			{Name: "name", Required: true},
			{Name: "os", Required: true},
			{Name: "host_version", Required: true},
		},
	},
	{
		Title: "Resources",
		Fields: []FieldRule{
			{Name: "cpu", Kind: KindInt, Required: true, Min: 1},
			{Name: "ram", Kind: KindInt, Required: true, Min: 1},
			{Name: "disk", Kind: KindFloat, Required: true, Min: 1},
		},
	},
	{Title: "Review"},
}

// VNISteps is the VNI work-order wizard. Deadline is the only optional
// general field; number_of_ips is derived but still validated because the
// derivation yields 0 for an unusable range.
var VNISteps = []StepSchema{
	{
		Title: "General Info",
		Fields: []FieldRule{
			{Name: "owner", Required: true},
			{Name: "requested_by", Required: true},
			{Name: "project", Required: true},
			{Name: "description", Required: true},
			{Name: "priority", Required: true},
			{Name: "deadline"},
		},
	},
	{
		Title: "VNI Configuration",
		Fields: []FieldRule{
			{Name: "t0_gw", Required: true},
			{Name: "t1_gw", Required: true},
			{Name: "vni_name", Required: true},
			{Name: "cidr", Required: true},
			{Name: "subnet_mask", Required: true},
			{Name: "gateway", Required: true},
			{Name: "first_ip", Required: true},
			{Name: "last_ip", Required: true},
			{Name: "number_of_ips", Kind: KindInt, Required: true, Min: 1},
		},
	},
	{Title: "Review"},
}

// CoerceInt parses raw as an integer and enforces the minimum. The bool
// reports whether the value is usable.
func CoerceInt(raw string, min int) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < min {
		return 0, false
	}
	return value, true
}

// CoerceFloat parses raw as a number and enforces the minimum.
func CoerceFloat(raw string, min float64) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < min {
		return 0, false
	}
	return value, true
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
