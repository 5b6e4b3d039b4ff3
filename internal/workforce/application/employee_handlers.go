package application

import (
	"context"
	"errors"
	"time"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

// maxIDAttempts bounds identifier regeneration when a freshly generated
// employee ID loses the 36^8 lottery against an existing record.
const maxIDAttempts = 3

type createEmployeeHandler struct {
	repository  domain.EmployeeRepository
	idGenerator pkgDomain.IDGenerator[string]
	eventBus    pkgApp.EventBus[pkgDomain.Event[string], string]
	logger      pkgApp.AppLogger
}

func NewCreateEmployeeHandler(repo domain.EmployeeRepository, idGenerator pkgDomain.IDGenerator[string], eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateEmployeeData], CreateEmployeeData, domain.Employee] {
	return &createEmployeeHandler{
		repository:  repo,
		idGenerator: idGenerator,
		eventBus:    eventBus,
		logger:      logger,
	}
}

func (h *createEmployeeHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateEmployeeData]) (domain.Employee, error) {
	if ctx.Err() != nil {
		return domain.Employee{}, ctx.Err()
	}

	data := command.Payload()
	employee := domain.Employee{
		Name:         data.Name,
		EmailAddress: data.EmailAddress,
		Phone:        data.Phone,
		Gender:       data.Gender,
		JoinedDate:   time.Now().UTC(),
	}

	if err := employee.Validate(); err != nil {
		return domain.Employee{}, err
	}

	if _, err := h.repository.FindByEmailOrPhone(ctx, employee.EmailAddress, employee.Phone); err == nil {
		return domain.Employee{}, domain.ErrContactTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Employee{}, err
	}

	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		employee.ID = h.idGenerator()
		err = h.repository.Save(ctx, employee)
		if !errors.Is(err, domain.ErrEmployeeIDTaken) {
			break
		}
		pkgApp.LogInfo(ctx, h.logger, "employee id collision, regenerating", map[string]interface{}{
			"employee_id": employee.ID,
		})
	}
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving employee", err, map[string]interface{}{"employee": employee})
		return domain.Employee{}, err
	}

	if err := h.eventBus.Publish(ctx, NewEmployeeCreatedEvent("employee "+employee.ID+" created")); err != nil {
		pkgApp.LogError(ctx, h.logger, "error publishing event", err, nil)
	}

	pkgApp.LogInfo(ctx, h.logger, "employee created", map[string]interface{}{"employee_id": employee.ID})
	return employee, nil
}

type updateEmployeeHandler struct {
	repository domain.EmployeeRepository
	logger     pkgApp.AppLogger
}

func NewUpdateEmployeeHandler(repo domain.EmployeeRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdateEmployeeData], UpdateEmployeeData, domain.Employee] {
	return &updateEmployeeHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *updateEmployeeHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateEmployeeData]) (domain.Employee, error) {
	if ctx.Err() != nil {
		return domain.Employee{}, ctx.Err()
	}

	data := command.Payload()
	existing, err := h.repository.FindByID(ctx, data.ID)
	if err != nil {
		return domain.Employee{}, err
	}

	employee := domain.Employee{
		ID:           existing.ID,
		Name:         data.Name,
		EmailAddress: data.EmailAddress,
		Phone:        data.Phone,
		Gender:       data.Gender,
		JoinedDate:   existing.JoinedDate,
	}

	if err := employee.Validate(); err != nil {
		return domain.Employee{}, err
	}

	// Contact fields may only collide with a different employee.
	if other, err := h.repository.FindByEmailOrPhone(ctx, employee.EmailAddress, employee.Phone); err == nil {
		if other.ID != employee.ID {
			return domain.Employee{}, domain.ErrContactTaken
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Employee{}, err
	}

	if err := h.repository.Update(ctx, employee); err != nil {
		pkgApp.LogError(ctx, h.logger, "error updating employee", err, map[string]interface{}{"employee": employee})
		return domain.Employee{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "employee updated", map[string]interface{}{"employee_id": employee.ID})
	return employee, nil
}

type deleteEmployeeHandler struct {
	repository  domain.EmployeeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewDeleteEmployeeHandler(repo domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteEmployeeData], DeleteEmployeeData, bool] {
	return &deleteEmployeeHandler{
		repository:  repo,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *deleteEmployeeHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteEmployeeData]) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	data := command.Payload()
	if _, err := h.repository.FindByID(ctx, data.ID); err != nil {
		return false, err
	}

	// Assignment records do not outlive the employee they reference.
	if err := h.assignments.DeleteByEmployeeID(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting employee assignments", err, map[string]interface{}{"employee_id": data.ID})
		return false, err
	}

	if err := h.repository.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting employee", err, map[string]interface{}{"employee_id": data.ID})
		return false, err
	}

	pkgApp.LogInfo(ctx, h.logger, "employee deleted", map[string]interface{}{"employee_id": data.ID})
	return true, nil
}

type getAllEmployeesHandler struct {
	repository domain.EmployeeRepository
	logger     pkgApp.AppLogger
}

func NewGetAllEmployeesHandler(repo domain.EmployeeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[AllEmployeesData], AllEmployeesData, []EmployeeDTO] {
	return &getAllEmployeesHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *getAllEmployeesHandler) Handle(ctx context.Context, query pkgDomain.Query[AllEmployeesData]) ([]EmployeeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	employees, err := h.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		dtos = append(dtos, NewEmployeeDTO(employee))
	}
	return dtos, nil
}

type getEmployeeByIDHandler struct {
	repository domain.EmployeeRepository
	logger     pkgApp.AppLogger
}

func NewGetEmployeeByIDHandler(repo domain.EmployeeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeeByIDData], EmployeeByIDData, EmployeeDTO] {
	return &getEmployeeByIDHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *getEmployeeByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeeByIDData]) (EmployeeDTO, error) {
	if ctx.Err() != nil {
		return EmployeeDTO{}, ctx.Err()
	}

	employee, err := h.repository.FindByID(ctx, query.Payload().ID)
	if err != nil {
		return EmployeeDTO{}, err
	}
	return NewEmployeeDTO(employee), nil
}

type getEmployeeByEmailOrPhoneHandler struct {
	repository domain.EmployeeRepository
	logger     pkgApp.AppLogger
}

func NewGetEmployeeByEmailOrPhoneHandler(repo domain.EmployeeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeeByEmailOrPhoneData], EmployeeByEmailOrPhoneData, EmployeeDTO] {
	return &getEmployeeByEmailOrPhoneHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *getEmployeeByEmailOrPhoneHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeeByEmailOrPhoneData]) (EmployeeDTO, error) {
	if ctx.Err() != nil {
		return EmployeeDTO{}, ctx.Err()
	}

	data := query.Payload()
	employee, err := h.repository.FindByEmailOrPhone(ctx, data.EmailAddress, data.Phone)
	if err != nil {
		return EmployeeDTO{}, err
	}
	return NewEmployeeDTO(employee), nil
}

type getEmployeesByCafeIDHandler struct {
	employees   domain.EmployeeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewGetEmployeesByCafeIDHandler(employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeesByCafeIDData], EmployeesByCafeIDData, []EmployeeDTO] {
	return &getEmployeesByCafeIDHandler{
		employees:   employees,
		assignments: assignments,
		logger:      logger,
	}
}

// Handle returns the employees holding at least one active assignment to the
// cafe, each listed once.
func (h *getEmployeesByCafeIDHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeesByCafeIDData]) ([]EmployeeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	records, err := h.assignments.FindByCafeID(ctx, query.Payload().CafeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	dtos := make([]EmployeeDTO, 0, len(records))
	for _, record := range records {
		if !record.IsActive || seen[record.EmployeeID] {
			continue
		}
		seen[record.EmployeeID] = true

		employee, err := h.employees.FindByID(ctx, record.EmployeeID)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, NewEmployeeDTO(employee))
	}
	return dtos, nil
}
