package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeworks/go-workforce/internal/workforce/application"
	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	"github.com/cafeworks/go-workforce/internal/workforce/infrastructure"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, fields map[string]interface{})  {}
func (nopLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {}
func (nopLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {}
func (nopLogger) Trace(ctx context.Context, msg string, fields map[string]interface{}) {}

// fixture wires the full handler set against in-memory repositories.
type fixture struct {
	cafes       *infrastructure.InMemoryCafeRepository
	employees   *infrastructure.InMemoryEmployeeRepository
	assignments *infrastructure.InMemoryEmployeeCafeRepository

	createCafe       pkgApp.CommandHandler[pkgDomain.Command[application.CreateCafeData], application.CreateCafeData, domain.Cafe]
	updateCafe       pkgApp.CommandHandler[pkgDomain.Command[application.UpdateCafeData], application.UpdateCafeData, domain.Cafe]
	deleteCafe       pkgApp.CommandHandler[pkgDomain.Command[application.DeleteCafeData], application.DeleteCafeData, bool]
	createEmployee   pkgApp.CommandHandler[pkgDomain.Command[application.CreateEmployeeData], application.CreateEmployeeData, domain.Employee]
	updateEmployee   pkgApp.CommandHandler[pkgDomain.Command[application.UpdateEmployeeData], application.UpdateEmployeeData, domain.Employee]
	deleteEmployee   pkgApp.CommandHandler[pkgDomain.Command[application.DeleteEmployeeData], application.DeleteEmployeeData, bool]
	assignEmployee   pkgApp.CommandHandler[pkgDomain.Command[application.AssignEmployeeData], application.AssignEmployeeData, domain.EmployeeCafe]
	updateAssignment pkgApp.CommandHandler[pkgDomain.Command[application.UpdateAssignmentData], application.UpdateAssignmentData, domain.EmployeeCafe]
	unassignEmployee pkgApp.CommandHandler[pkgDomain.Command[application.UnassignEmployeeData], application.UnassignEmployeeData, bool]

	getCafeByID        pkgApp.QueryHandler[pkgDomain.Query[application.CafeByIDData], application.CafeByIDData, application.CafeDTO]
	cafeNameExists     pkgApp.QueryHandler[pkgDomain.Query[application.CafeNameExistsData], application.CafeNameExistsData, bool]
	getCafesByLocation pkgApp.QueryHandler[pkgDomain.Query[application.CafesByLocationData], application.CafesByLocationData, []application.CafeDTO]

	getAllEmployees   pkgApp.QueryHandler[pkgDomain.Query[application.AllEmployeesData], application.AllEmployeesData, []application.EmployeeDTO]
	getEmployeeByID   pkgApp.QueryHandler[pkgDomain.Query[application.EmployeeByIDData], application.EmployeeByIDData, application.EmployeeDTO]
	getByContact      pkgApp.QueryHandler[pkgDomain.Query[application.EmployeeByEmailOrPhoneData], application.EmployeeByEmailOrPhoneData, application.EmployeeDTO]
	getByCafe         pkgApp.QueryHandler[pkgDomain.Query[application.EmployeesByCafeIDData], application.EmployeesByCafeIDData, []application.EmployeeDTO]
	getAllAssignments pkgApp.QueryHandler[pkgDomain.Query[application.AllEmployeeCafesData], application.AllEmployeeCafesData, []application.EmployeeCafeDTO]
	getAssignmentByID pkgApp.QueryHandler[pkgDomain.Query[application.EmployeeCafeByIDData], application.EmployeeCafeByIDData, application.EmployeeCafeDTO]
}

func newFixture() *fixture {
	logger := nopLogger{}
	cafes := infrastructure.NewInMemoryCafeRepository(logger)
	employees := infrastructure.NewInMemoryEmployeeRepository(logger)
	assignments := infrastructure.NewInMemoryEmployeeCafeRepository(logger)

	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](logger)
	uuidGenerator := pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID)
	employeeIDs := domain.NewEmployeeIDGenerator(nil)

	return &fixture{
		cafes:       cafes,
		employees:   employees,
		assignments: assignments,

		createCafe:       application.NewCreateCafeHandler(cafes, uuidGenerator, eventBus, logger),
		updateCafe:       application.NewUpdateCafeHandler(cafes, logger),
		deleteCafe:       application.NewDeleteCafeHandler(cafes, assignments, logger),
		createEmployee:   application.NewCreateEmployeeHandler(employees, employeeIDs, eventBus, logger),
		updateEmployee:   application.NewUpdateEmployeeHandler(employees, logger),
		deleteEmployee:   application.NewDeleteEmployeeHandler(employees, assignments, logger),
		assignEmployee:   application.NewAssignEmployeeHandler(cafes, employees, assignments, uuidGenerator, eventBus, logger),
		updateAssignment: application.NewUpdateAssignmentHandler(cafes, employees, assignments, logger),
		unassignEmployee: application.NewUnassignEmployeeHandler(assignments, eventBus, logger),

		getCafeByID:        application.NewGetCafeByIDHandler(cafes, assignments, logger),
		cafeNameExists:     application.NewCafeNameExistsHandler(cafes, logger),
		getCafesByLocation: application.NewGetCafesByLocationHandler(cafes, assignments, logger),

		getAllEmployees:   application.NewGetAllEmployeesHandler(employees, logger),
		getEmployeeByID:   application.NewGetEmployeeByIDHandler(employees, logger),
		getByContact:      application.NewGetEmployeeByEmailOrPhoneHandler(employees, logger),
		getByCafe:         application.NewGetEmployeesByCafeIDHandler(employees, assignments, logger),
		getAllAssignments: application.NewGetAllEmployeeCafesHandler(cafes, employees, assignments, logger),
		getAssignmentByID: application.NewGetEmployeeCafeByIDHandler(cafes, employees, assignments, logger),
	}
}

func (f *fixture) mustCreateCafe(t *testing.T, name, location string) domain.Cafe {
	t.Helper()
	cafe, err := f.createCafe.Handle(context.Background(), application.NewCreateCafeCommand(application.CreateCafeData{
		Name:     name,
		Location: location,
	}))
	require.NoError(t, err)
	return cafe
}

func (f *fixture) mustCreateEmployee(t *testing.T, name, email, phone string) domain.Employee {
	t.Helper()
	employee, err := f.createEmployee.Handle(context.Background(), application.NewCreateEmployeeCommand(application.CreateEmployeeData{
		Name:         name,
		EmailAddress: email,
		Phone:        phone,
		Gender:       domain.GenderFemale,
	}))
	require.NoError(t, err)
	return employee
}

func (f *fixture) mustAssign(t *testing.T, cafeID, employeeID string) domain.EmployeeCafe {
	t.Helper()
	assignment, err := f.assignEmployee.Handle(context.Background(), application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:     cafeID,
		EmployeeID: employeeID,
	}))
	require.NoError(t, err)
	return assignment
}

func TestCreateCafe(t *testing.T) {
	f := newFixture()

	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	assert.NotEmpty(t, cafe.ID)
	assert.Equal(t, "Bean There", cafe.Name)

	stored, err := f.cafes.FindByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, cafe, stored)
}

func TestCreateCafeDuplicateName(t *testing.T) {
	f := newFixture()
	f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")

	_, err := f.createCafe.Handle(context.Background(), application.NewCreateCafeCommand(application.CreateCafeData{
		Name:     "Bean There",
		Location: "Bishan",
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestCreateCafeEmptyName(t *testing.T) {
	f := newFixture()

	_, err := f.createCafe.Handle(context.Background(), application.NewCreateCafeCommand(application.CreateCafeData{
		Name: "   ",
	}))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestUpdateCafe(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")

	updated, err := f.updateCafe.Handle(context.Background(), application.NewUpdateCafeCommand(application.UpdateCafeData{
		ID:       cafe.ID,
		Name:     "Bean There",
		Location: "Bishan",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Bishan", updated.Location)
}

func TestUpdateCafeMissing(t *testing.T) {
	f := newFixture()

	_, err := f.updateCafe.Handle(context.Background(), application.NewUpdateCafeCommand(application.UpdateCafeData{
		ID:   "missing",
		Name: "Bean There",
	}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateCafeNameTakenByOther(t *testing.T) {
	f := newFixture()
	f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	other := f.mustCreateCafe(t, "Grind House", "Bishan")

	_, err := f.updateCafe.Handle(context.Background(), application.NewUpdateCafeCommand(application.UpdateCafeData{
		ID:   other.ID,
		Name: "Bean There",
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestDeleteCafeCascadesAssignments(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	assignment := f.mustAssign(t, cafe.ID, employee.ID)

	deleted, err := f.deleteCafe.Handle(context.Background(), application.NewDeleteCafeCommand(application.DeleteCafeData{ID: cafe.ID}))
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.cafes.FindByID(context.Background(), cafe.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = f.assignments.FindByID(context.Background(), assignment.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// The employee survives the cascade.
	_, err = f.employees.FindByID(context.Background(), employee.ID)
	assert.NoError(t, err)
}

func TestDeleteCafeMissing(t *testing.T) {
	f := newFixture()

	_, err := f.deleteCafe.Handle(context.Background(), application.NewDeleteCafeCommand(application.DeleteCafeData{ID: "missing"}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetCafeByIDCountsActiveAssignments(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	first := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	second := f.mustCreateEmployee(t, "John Doe", "john@example.com", "98765432")

	f.mustAssign(t, cafe.ID, first.ID)
	assignment := f.mustAssign(t, cafe.ID, second.ID)

	dto, err := f.getCafeByID.Handle(context.Background(), application.NewGetCafeByIDQuery(application.CafeByIDData{ID: cafe.ID}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dto.EmployeeCount)

	// Deactivating an assignment removes it from the count.
	_, err = f.updateAssignment.Handle(context.Background(), application.NewUpdateAssignmentCommand(application.UpdateAssignmentData{
		ID:         assignment.ID,
		CafeID:     cafe.ID,
		EmployeeID: second.ID,
		IsActive:   false,
	}))
	require.NoError(t, err)

	dto, err = f.getCafeByID.Handle(context.Background(), application.NewGetCafeByIDQuery(application.CafeByIDData{ID: cafe.ID}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dto.EmployeeCount)
}

func TestCafeNameExists(t *testing.T) {
	f := newFixture()
	f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")

	exists, err := f.cafeNameExists.Handle(context.Background(), application.NewCafeNameExistsQuery(application.CafeNameExistsData{Name: "Bean There"}))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.cafeNameExists.Handle(context.Background(), application.NewCafeNameExistsQuery(application.CafeNameExistsData{Name: "Grind House"}))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetCafesByLocation(t *testing.T) {
	f := newFixture()
	f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	f.mustCreateCafe(t, "Grind House", "Ang Mo Kio")
	f.mustCreateCafe(t, "Drip Lab", "Bishan")

	dtos, err := f.getCafesByLocation.Handle(context.Background(), application.NewGetCafesByLocationQuery(application.CafesByLocationData{Location: "Ang Mo Kio"}))
	require.NoError(t, err)
	assert.Len(t, dtos, 2)

	dtos, err = f.getCafesByLocation.Handle(context.Background(), application.NewGetCafesByLocationQuery(application.CafesByLocationData{Location: "Jurong"}))
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestCreateEmployee(t *testing.T) {
	f := newFixture()

	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	assert.True(t, domain.ValidEmployeeID(employee.ID), "id %q must match the employee format", employee.ID)
	assert.False(t, employee.JoinedDate.IsZero())
}

func TestCreateEmployeeDuplicateContact(t *testing.T) {
	f := newFixture()
	f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	_, err := f.createEmployee.Handle(context.Background(), application.NewCreateEmployeeCommand(application.CreateEmployeeData{
		Name:         "Impostor",
		EmailAddress: "jane@example.com",
		Phone:        "90000000",
		Gender:       domain.GenderOther,
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = f.createEmployee.Handle(context.Background(), application.NewCreateEmployeeCommand(application.CreateEmployeeData{
		Name:         "Impostor",
		EmailAddress: "other@example.com",
		Phone:        "91234567",
		Gender:       domain.GenderOther,
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestCreateEmployeeInvalidGender(t *testing.T) {
	f := newFixture()

	_, err := f.createEmployee.Handle(context.Background(), application.NewCreateEmployeeCommand(application.CreateEmployeeData{
		Name:         "Jane Doe",
		EmailAddress: "jane@example.com",
		Phone:        "91234567",
		Gender:       "Unknown",
	}))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestUpdateEmployeePreservesJoinedDate(t *testing.T) {
	f := newFixture()
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	updated, err := f.updateEmployee.Handle(context.Background(), application.NewUpdateEmployeeCommand(application.UpdateEmployeeData{
		ID:           employee.ID,
		Name:         "Jane Smith",
		EmailAddress: "jane.smith@example.com",
		Phone:        "91234567",
		Gender:       domain.GenderFemale,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, employee.JoinedDate, updated.JoinedDate)
}

func TestUpdateEmployeeContactTakenByOther(t *testing.T) {
	f := newFixture()
	f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	other := f.mustCreateEmployee(t, "John Doe", "john@example.com", "98765432")

	_, err := f.updateEmployee.Handle(context.Background(), application.NewUpdateEmployeeCommand(application.UpdateEmployeeData{
		ID:           other.ID,
		Name:         "John Doe",
		EmailAddress: "jane@example.com",
		Phone:        "98765432",
		Gender:       domain.GenderMale,
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUpdateEmployeeMissing(t *testing.T) {
	f := newFixture()

	_, err := f.updateEmployee.Handle(context.Background(), application.NewUpdateEmployeeCommand(application.UpdateEmployeeData{
		ID:           "UIMISSING0",
		Name:         "Nobody",
		EmailAddress: "nobody@example.com",
		Phone:        "90000000",
		Gender:       domain.GenderOther,
	}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteEmployeeCascadesAssignments(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	assignment := f.mustAssign(t, cafe.ID, employee.ID)

	deleted, err := f.deleteEmployee.Handle(context.Background(), application.NewDeleteEmployeeCommand(application.DeleteEmployeeData{ID: employee.ID}))
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.assignments.FindByID(context.Background(), assignment.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetEmployeeByEmailOrPhone(t *testing.T) {
	f := newFixture()
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	dto, err := f.getByContact.Handle(context.Background(), application.NewGetEmployeeByEmailOrPhoneQuery(application.EmployeeByEmailOrPhoneData{
		EmailAddress: "jane@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, employee.ID, dto.ID)

	dto, err = f.getByContact.Handle(context.Background(), application.NewGetEmployeeByEmailOrPhoneQuery(application.EmployeeByEmailOrPhoneData{
		Phone: "91234567",
	}))
	require.NoError(t, err)
	assert.Equal(t, employee.ID, dto.ID)

	_, err = f.getByContact.Handle(context.Background(), application.NewGetEmployeeByEmailOrPhoneQuery(application.EmployeeByEmailOrPhoneData{
		EmailAddress: "missing@example.com",
	}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetEmployeesByCafeIDSkipsInactive(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	active := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	inactive := f.mustCreateEmployee(t, "John Doe", "john@example.com", "98765432")

	f.mustAssign(t, cafe.ID, active.ID)
	assignment := f.mustAssign(t, cafe.ID, inactive.ID)

	_, err := f.updateAssignment.Handle(context.Background(), application.NewUpdateAssignmentCommand(application.UpdateAssignmentData{
		ID:         assignment.ID,
		CafeID:     cafe.ID,
		EmployeeID: inactive.ID,
		IsActive:   false,
	}))
	require.NoError(t, err)

	dtos, err := f.getByCafe.Handle(context.Background(), application.NewGetEmployeesByCafeIDQuery(application.EmployeesByCafeIDData{CafeID: cafe.ID}))
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, active.ID, dtos[0].ID)
}

func TestAssignEmployee(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	assignment := f.mustAssign(t, cafe.ID, employee.ID)
	assert.NotEmpty(t, assignment.ID)
	assert.True(t, assignment.IsActive)
	assert.False(t, assignment.AssignedDate.IsZero())
}

func TestAssignEmployeeUnknownReferences(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	_, err := f.assignEmployee.Handle(context.Background(), application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:     "missing",
		EmployeeID: employee.ID,
	}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = f.assignEmployee.Handle(context.Background(), application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:     cafe.ID,
		EmployeeID: "UIMISSING0",
	}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAssignEmployeeTwiceRejected(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	f.mustAssign(t, cafe.ID, employee.ID)

	_, err := f.assignEmployee.Handle(context.Background(), application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:     cafe.ID,
		EmployeeID: employee.ID,
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestAssignEmployeeKeepsExplicitDate(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	assignedDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	assignment, err := f.assignEmployee.Handle(context.Background(), application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:       cafe.ID,
		EmployeeID:   employee.ID,
		AssignedDate: assignedDate,
	}))
	require.NoError(t, err)
	assert.Equal(t, assignedDate, assignment.AssignedDate)
}

func TestUpdateAssignmentReactivationConflict(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")

	first := f.mustAssign(t, cafe.ID, employee.ID)

	// Deactivate, assign again, then try to reactivate the first record.
	_, err := f.updateAssignment.Handle(context.Background(), application.NewUpdateAssignmentCommand(application.UpdateAssignmentData{
		ID:         first.ID,
		CafeID:     cafe.ID,
		EmployeeID: employee.ID,
		IsActive:   false,
	}))
	require.NoError(t, err)

	f.mustAssign(t, cafe.ID, employee.ID)

	_, err = f.updateAssignment.Handle(context.Background(), application.NewUpdateAssignmentCommand(application.UpdateAssignmentData{
		ID:         first.ID,
		CafeID:     cafe.ID,
		EmployeeID: employee.ID,
		IsActive:   true,
	}))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUnassignEmployee(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	assignment := f.mustAssign(t, cafe.ID, employee.ID)

	deleted, err := f.unassignEmployee.Handle(context.Background(), application.NewUnassignEmployeeCommand(application.UnassignEmployeeData{ID: assignment.ID}))
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.assignments.FindByID(context.Background(), assignment.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// The pair can be assigned again afterwards.
	f.mustAssign(t, cafe.ID, employee.ID)
}

func TestUnassignEmployeeMissing(t *testing.T) {
	f := newFixture()

	_, err := f.unassignEmployee.Handle(context.Background(), application.NewUnassignEmployeeCommand(application.UnassignEmployeeData{ID: "missing"}))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetEmployeeCafeByIDResolvesNames(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	employee := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	assignment := f.mustAssign(t, cafe.ID, employee.ID)

	dto, err := f.getAssignmentByID.Handle(context.Background(), application.NewGetEmployeeCafeByIDQuery(application.EmployeeCafeByIDData{ID: assignment.ID}))
	require.NoError(t, err)
	assert.Equal(t, "Bean There", dto.CafeName)
	assert.Equal(t, "Jane Doe", dto.EmployeeName)
	assert.True(t, dto.IsActive)
}

func TestGetAllEmployeeCafes(t *testing.T) {
	f := newFixture()
	cafe := f.mustCreateCafe(t, "Bean There", "Ang Mo Kio")
	jane := f.mustCreateEmployee(t, "Jane Doe", "jane@example.com", "91234567")
	john := f.mustCreateEmployee(t, "John Doe", "john@example.com", "98765432")

	f.mustAssign(t, cafe.ID, jane.ID)
	f.mustAssign(t, cafe.ID, john.ID)

	dtos, err := f.getAllAssignments.Handle(context.Background(), application.NewGetAllEmployeeCafesQuery())
	require.NoError(t, err)
	assert.Len(t, dtos, 2)
}
