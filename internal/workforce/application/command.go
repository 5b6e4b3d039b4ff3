package application

import (
	"time"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

// Command names, as registered on the command bus.
const (
	CreateCafeCommandName       = "CreateCafe"
	UpdateCafeCommandName       = "UpdateCafe"
	DeleteCafeCommandName       = "DeleteCafe"
	CreateEmployeeCommandName   = "CreateEmployee"
	UpdateEmployeeCommandName   = "UpdateEmployee"
	DeleteEmployeeCommandName   = "DeleteEmployee"
	AssignEmployeeCommandName   = "AssignEmployee"
	UpdateAssignmentCommandName = "UpdateAssignment"
	UnassignEmployeeCommandName = "UnassignEmployee"
)

// CommandNames lists every command the slice handles, in registration order.
func CommandNames() []string {
	return []string{
		CreateCafeCommandName,
		UpdateCafeCommandName,
		DeleteCafeCommandName,
		CreateEmployeeCommandName,
		UpdateEmployeeCommandName,
		DeleteEmployeeCommandName,
		AssignEmployeeCommandName,
		UpdateAssignmentCommandName,
		UnassignEmployeeCommandName,
	}
}

// CreateCafeData contains the fields needed to open a new cafe.
type CreateCafeData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
}

type createCafeCommand struct {
	data CreateCafeData
}

func (c createCafeCommand) CommandName() string {
	return CreateCafeCommandName
}

func (c createCafeCommand) Payload() CreateCafeData {
	return c.data
}

func NewCreateCafeCommand(data CreateCafeData) pkgDomain.Command[CreateCafeData] {
	return createCafeCommand{data: data}
}

// UpdateCafeData replaces every mutable field of an existing cafe.
type UpdateCafeData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
}

type updateCafeCommand struct {
	data UpdateCafeData
}

func (c updateCafeCommand) CommandName() string {
	return UpdateCafeCommandName
}

func (c updateCafeCommand) Payload() UpdateCafeData {
	return c.data
}

func NewUpdateCafeCommand(data UpdateCafeData) pkgDomain.Command[UpdateCafeData] {
	return updateCafeCommand{data: data}
}

type DeleteCafeData struct {
	ID string `json:"id"`
}

type deleteCafeCommand struct {
	data DeleteCafeData
}

func (c deleteCafeCommand) CommandName() string {
	return DeleteCafeCommandName
}

func (c deleteCafeCommand) Payload() DeleteCafeData {
	return c.data
}

func NewDeleteCafeCommand(data DeleteCafeData) pkgDomain.Command[DeleteCafeData] {
	return deleteCafeCommand{data: data}
}

// CreateEmployeeData contains the fields needed to hire a new employee. The
// identifier and joined date are assigned by the handler.
type CreateEmployeeData struct {
	Name         string        `json:"name"`
	EmailAddress string        `json:"emailAddress"`
	Phone        string        `json:"phone"`
	Gender       domain.Gender `json:"gender"`
}

type createEmployeeCommand struct {
	data CreateEmployeeData
}

func (c createEmployeeCommand) CommandName() string {
	return CreateEmployeeCommandName
}

func (c createEmployeeCommand) Payload() CreateEmployeeData {
	return c.data
}

func NewCreateEmployeeCommand(data CreateEmployeeData) pkgDomain.Command[CreateEmployeeData] {
	return createEmployeeCommand{data: data}
}

// UpdateEmployeeData replaces every mutable field of an existing employee.
type UpdateEmployeeData struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	EmailAddress string        `json:"emailAddress"`
	Phone        string        `json:"phone"`
	Gender       domain.Gender `json:"gender"`
}

type updateEmployeeCommand struct {
	data UpdateEmployeeData
}

func (c updateEmployeeCommand) CommandName() string {
	return UpdateEmployeeCommandName
}

func (c updateEmployeeCommand) Payload() UpdateEmployeeData {
	return c.data
}

func NewUpdateEmployeeCommand(data UpdateEmployeeData) pkgDomain.Command[UpdateEmployeeData] {
	return updateEmployeeCommand{data: data}
}

type DeleteEmployeeData struct {
	ID string `json:"id"`
}

type deleteEmployeeCommand struct {
	data DeleteEmployeeData
}

func (c deleteEmployeeCommand) CommandName() string {
	return DeleteEmployeeCommandName
}

func (c deleteEmployeeCommand) Payload() DeleteEmployeeData {
	return c.data
}

func NewDeleteEmployeeCommand(data DeleteEmployeeData) pkgDomain.Command[DeleteEmployeeData] {
	return deleteEmployeeCommand{data: data}
}

// AssignEmployeeData links an employee to a cafe. A zero AssignedDate
// defaults to the current time.
type AssignEmployeeData struct {
	CafeID       string    `json:"cafeId"`
	EmployeeID   string    `json:"employeeId"`
	AssignedDate time.Time `json:"assignedDate"`
}

type assignEmployeeCommand struct {
	data AssignEmployeeData
}

func (c assignEmployeeCommand) CommandName() string {
	return AssignEmployeeCommandName
}

func (c assignEmployeeCommand) Payload() AssignEmployeeData {
	return c.data
}

func NewAssignEmployeeCommand(data AssignEmployeeData) pkgDomain.Command[AssignEmployeeData] {
	return assignEmployeeCommand{data: data}
}

// UpdateAssignmentData replaces every field of an existing assignment.
type UpdateAssignmentData struct {
	ID           string    `json:"id"`
	CafeID       string    `json:"cafeId"`
	EmployeeID   string    `json:"employeeId"`
	AssignedDate time.Time `json:"assignedDate"`
	IsActive     bool      `json:"isActive"`
}

type updateAssignmentCommand struct {
	data UpdateAssignmentData
}

func (c updateAssignmentCommand) CommandName() string {
	return UpdateAssignmentCommandName
}

func (c updateAssignmentCommand) Payload() UpdateAssignmentData {
	return c.data
}

func NewUpdateAssignmentCommand(data UpdateAssignmentData) pkgDomain.Command[UpdateAssignmentData] {
	return updateAssignmentCommand{data: data}
}

type UnassignEmployeeData struct {
	ID string `json:"id"`
}

type unassignEmployeeCommand struct {
	data UnassignEmployeeData
}

func (c unassignEmployeeCommand) CommandName() string {
	return UnassignEmployeeCommandName
}

func (c unassignEmployeeCommand) Payload() UnassignEmployeeData {
	return c.data
}

func NewUnassignEmployeeCommand(data UnassignEmployeeData) pkgDomain.Command[UnassignEmployeeData] {
	return unassignEmployeeCommand{data: data}
}
