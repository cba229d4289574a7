// Package library defines the service contracts the console client exposes.
// Each resource gets its own interface so that consumers depend only on
// what they use and tests can mock a single collaborator.
package library

type Library interface {
	WorkOrder() WorkOrder
	VNIWorkOrder() VNIWorkOrder
	Inventory() Inventory
}
