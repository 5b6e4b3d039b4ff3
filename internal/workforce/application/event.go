package application

import (
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

// Event names published by the slice after successful mutations.
const (
	CafeCreatedEventName        = "CafeCreated"
	EmployeeCreatedEventName    = "EmployeeCreated"
	EmployeeAssignedEventName   = "EmployeeAssigned"
	EmployeeUnassignedEventName = "EmployeeUnassigned"
)

// EventNames lists every event the slice publishes.
func EventNames() []string {
	return []string{
		CafeCreatedEventName,
		EmployeeCreatedEventName,
		EmployeeAssignedEventName,
		EmployeeUnassignedEventName,
	}
}

type workforceEvent struct {
	name    string
	message string
}

func (e workforceEvent) EventName() string {
	return e.name
}

func (e workforceEvent) Payload() string {
	return e.message
}

func NewCafeCreatedEvent(message string) pkgDomain.Event[string] {
	return workforceEvent{name: CafeCreatedEventName, message: message}
}

func NewEmployeeCreatedEvent(message string) pkgDomain.Event[string] {
	return workforceEvent{name: EmployeeCreatedEventName, message: message}
}

func NewEmployeeAssignedEvent(message string) pkgDomain.Event[string] {
	return workforceEvent{name: EmployeeAssignedEventName, message: message}
}

func NewEmployeeUnassignedEvent(message string) pkgDomain.Event[string] {
	return workforceEvent{name: EmployeeUnassignedEventName, message: message}
}
