package core

import (
	"fmt"
	"strings"
)

// PathBuilder helps construct API endpoint paths in a consistent way.
// It provides a fluent interface for building paths like
// "workorders/42/approve" without sprinkling string concatenation
// across the services.
type PathBuilder struct {
	segments []string
}

func NewPathBuilder() *PathBuilder {
	return &PathBuilder{segments: []string{}}
}

// Resource adds a resource type to the path (e.g., "workorders", "hosts").
func (p *PathBuilder) Resource(resource string) *PathBuilder {
	p.segments = append(p.segments, resource)
	return p
}

// ID adds a resource ID to the path. IDs are opaque, server-assigned
// strings; the console backend happens to use integers but nothing
// here depends on that.
func (p *PathBuilder) ID(id fmt.Stringer) *PathBuilder {
	p.segments = append(p.segments, id.String())
	return p
}

// IDString adds a plain string ID to the path.
func (p *PathBuilder) IDString(id string) *PathBuilder {
	p.segments = append(p.segments, id)
	return p
}

// Action adds an action to the path (e.g., "approve", "execute").
func (p *PathBuilder) Action(action string) *PathBuilder {
	p.segments = append(p.segments, action)
	return p
}

// Build returns the constructed path with segments joined by "/".
func (p *PathBuilder) Build() string {
	return strings.Join(p.segments, "/")
}

// FormatPath is a convenience function for simple resource/ID paths.
func FormatPath(resource, id string) string {
	return fmt.Sprintf("%s/%s", resource, id)
}
