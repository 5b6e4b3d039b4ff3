package application

import (
	"context"
	"errors"
	"time"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

type assignEmployeeHandler struct {
	cafes       domain.CafeRepository
	employees   domain.EmployeeRepository
	assignments domain.EmployeeCafeRepository
	idGenerator pkgDomain.IDGenerator[string]
	eventBus    pkgApp.EventBus[pkgDomain.Event[string], string]
	logger      pkgApp.AppLogger
}

func NewAssignEmployeeHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, idGenerator pkgDomain.IDGenerator[string], eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[AssignEmployeeData], AssignEmployeeData, domain.EmployeeCafe] {
	return &assignEmployeeHandler{
		cafes:       cafes,
		employees:   employees,
		assignments: assignments,
		idGenerator: idGenerator,
		eventBus:    eventBus,
		logger:      logger,
	}
}

func (h *assignEmployeeHandler) Handle(ctx context.Context, command pkgDomain.Command[AssignEmployeeData]) (domain.EmployeeCafe, error) {
	if ctx.Err() != nil {
		return domain.EmployeeCafe{}, ctx.Err()
	}

	data := command.Payload()
	if _, err := h.cafes.FindByID(ctx, data.CafeID); err != nil {
		return domain.EmployeeCafe{}, err
	}
	if _, err := h.employees.FindByID(ctx, data.EmployeeID); err != nil {
		return domain.EmployeeCafe{}, err
	}

	// One active assignment per (cafe, employee) pair.
	if _, err := h.assignments.FindActive(ctx, data.CafeID, data.EmployeeID); err == nil {
		return domain.EmployeeCafe{}, domain.ErrAlreadyAssigned
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.EmployeeCafe{}, err
	}

	assignedDate := data.AssignedDate
	if assignedDate.IsZero() {
		assignedDate = time.Now().UTC()
	}

	assignment := domain.EmployeeCafe{
		ID:           h.idGenerator(),
		CafeID:       data.CafeID,
		EmployeeID:   data.EmployeeID,
		AssignedDate: assignedDate,
		IsActive:     true,
	}

	if err := h.assignments.Save(ctx, assignment); err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving assignment", err, map[string]interface{}{"assignment": assignment})
		return domain.EmployeeCafe{}, err
	}

	if err := h.eventBus.Publish(ctx, NewEmployeeAssignedEvent("employee "+assignment.EmployeeID+" assigned to cafe "+assignment.CafeID)); err != nil {
		pkgApp.LogError(ctx, h.logger, "error publishing event", err, nil)
	}

	pkgApp.LogInfo(ctx, h.logger, "employee assigned", map[string]interface{}{
		"assignment_id": assignment.ID,
		"cafe_id":       assignment.CafeID,
		"employee_id":   assignment.EmployeeID,
	})
	return assignment, nil
}

type updateAssignmentHandler struct {
	cafes       domain.CafeRepository
	employees   domain.EmployeeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewUpdateAssignmentHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdateAssignmentData], UpdateAssignmentData, domain.EmployeeCafe] {
	return &updateAssignmentHandler{
		cafes:       cafes,
		employees:   employees,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *updateAssignmentHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateAssignmentData]) (domain.EmployeeCafe, error) {
	if ctx.Err() != nil {
		return domain.EmployeeCafe{}, ctx.Err()
	}

	data := command.Payload()
	if _, err := h.assignments.FindByID(ctx, data.ID); err != nil {
		return domain.EmployeeCafe{}, err
	}
	if _, err := h.cafes.FindByID(ctx, data.CafeID); err != nil {
		return domain.EmployeeCafe{}, err
	}
	if _, err := h.employees.FindByID(ctx, data.EmployeeID); err != nil {
		return domain.EmployeeCafe{}, err
	}

	if data.IsActive {
		if active, err := h.assignments.FindActive(ctx, data.CafeID, data.EmployeeID); err == nil {
			if active.ID != data.ID {
				return domain.EmployeeCafe{}, domain.ErrAlreadyAssigned
			}
		} else if !errors.Is(err, domain.ErrNotFound) {
			return domain.EmployeeCafe{}, err
		}
	}

	assignedDate := data.AssignedDate
	if assignedDate.IsZero() {
		assignedDate = time.Now().UTC()
	}

	assignment := domain.EmployeeCafe{
		ID:           data.ID,
		CafeID:       data.CafeID,
		EmployeeID:   data.EmployeeID,
		AssignedDate: assignedDate,
		IsActive:     data.IsActive,
	}

	if err := h.assignments.Update(ctx, assignment); err != nil {
		pkgApp.LogError(ctx, h.logger, "error updating assignment", err, map[string]interface{}{"assignment": assignment})
		return domain.EmployeeCafe{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "assignment updated", map[string]interface{}{"assignment_id": assignment.ID})
	return assignment, nil
}

type unassignEmployeeHandler struct {
	assignments domain.EmployeeCafeRepository
	eventBus    pkgApp.EventBus[pkgDomain.Event[string], string]
	logger      pkgApp.AppLogger
}

func NewUnassignEmployeeHandler(assignments domain.EmployeeCafeRepository, eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UnassignEmployeeData], UnassignEmployeeData, bool] {
	return &unassignEmployeeHandler{
		assignments: assignments,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Handle permanently removes the assignment record. Unassignment is
// terminal; deactivation goes through UpdateAssignment instead.
func (h *unassignEmployeeHandler) Handle(ctx context.Context, command pkgDomain.Command[UnassignEmployeeData]) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	data := command.Payload()
	assignment, err := h.assignments.FindByID(ctx, data.ID)
	if err != nil {
		return false, err
	}

	if err := h.assignments.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting assignment", err, map[string]interface{}{"assignment_id": data.ID})
		return false, err
	}

	if err := h.eventBus.Publish(ctx, NewEmployeeUnassignedEvent("employee "+assignment.EmployeeID+" unassigned from cafe "+assignment.CafeID)); err != nil {
		pkgApp.LogError(ctx, h.logger, "error publishing event", err, nil)
	}

	pkgApp.LogInfo(ctx, h.logger, "employee unassigned", map[string]interface{}{"assignment_id": data.ID})
	return true, nil
}

// assignmentResolver joins the foreign names an EmployeeCafeDTO carries.
type assignmentResolver struct {
	cafes     domain.CafeRepository
	employees domain.EmployeeRepository
}

func (r assignmentResolver) dto(ctx context.Context, assignment domain.EmployeeCafe) (EmployeeCafeDTO, error) {
	cafe, err := r.cafes.FindByID(ctx, assignment.CafeID)
	if err != nil {
		return EmployeeCafeDTO{}, err
	}
	employee, err := r.employees.FindByID(ctx, assignment.EmployeeID)
	if err != nil {
		return EmployeeCafeDTO{}, err
	}

	return EmployeeCafeDTO{
		ID:           assignment.ID,
		CafeID:       assignment.CafeID,
		CafeName:     cafe.Name,
		EmployeeID:   assignment.EmployeeID,
		EmployeeName: employee.Name,
		AssignedDate: assignment.AssignedDate,
		IsActive:     assignment.IsActive,
	}, nil
}

func (r assignmentResolver) dtos(ctx context.Context, assignments []domain.EmployeeCafe) ([]EmployeeCafeDTO, error) {
	out := make([]EmployeeCafeDTO, 0, len(assignments))
	for _, assignment := range assignments {
		dto, err := r.dto(ctx, assignment)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

type getAllEmployeeCafesHandler struct {
	assignments domain.EmployeeCafeRepository
	resolver    assignmentResolver
	logger      pkgApp.AppLogger
}

func NewGetAllEmployeeCafesHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[AllEmployeeCafesData], AllEmployeeCafesData, []EmployeeCafeDTO] {
	return &getAllEmployeeCafesHandler{
		assignments: assignments,
		resolver:    assignmentResolver{cafes: cafes, employees: employees},
		logger:      logger,
	}
}

func (h *getAllEmployeeCafesHandler) Handle(ctx context.Context, query pkgDomain.Query[AllEmployeeCafesData]) ([]EmployeeCafeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	records, err := h.assignments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return h.resolver.dtos(ctx, records)
}

type getEmployeeCafeByIDHandler struct {
	assignments domain.EmployeeCafeRepository
	resolver    assignmentResolver
	logger      pkgApp.AppLogger
}

func NewGetEmployeeCafeByIDHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeeCafeByIDData], EmployeeCafeByIDData, EmployeeCafeDTO] {
	return &getEmployeeCafeByIDHandler{
		assignments: assignments,
		resolver:    assignmentResolver{cafes: cafes, employees: employees},
		logger:      logger,
	}
}

func (h *getEmployeeCafeByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeeCafeByIDData]) (EmployeeCafeDTO, error) {
	if ctx.Err() != nil {
		return EmployeeCafeDTO{}, ctx.Err()
	}

	assignment, err := h.assignments.FindByID(ctx, query.Payload().ID)
	if err != nil {
		return EmployeeCafeDTO{}, err
	}
	return h.resolver.dto(ctx, assignment)
}

type getEmployeeCafesByCafeIDHandler struct {
	assignments domain.EmployeeCafeRepository
	resolver    assignmentResolver
	logger      pkgApp.AppLogger
}

func NewGetEmployeeCafesByCafeIDHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeeCafesByCafeIDData], EmployeeCafesByCafeIDData, []EmployeeCafeDTO] {
	return &getEmployeeCafesByCafeIDHandler{
		assignments: assignments,
		resolver:    assignmentResolver{cafes: cafes, employees: employees},
		logger:      logger,
	}
}

func (h *getEmployeeCafesByCafeIDHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeeCafesByCafeIDData]) ([]EmployeeCafeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	records, err := h.assignments.FindByCafeID(ctx, query.Payload().CafeID)
	if err != nil {
		return nil, err
	}
	return h.resolver.dtos(ctx, records)
}

type getEmployeeCafesByEmployeeIDHandler struct {
	assignments domain.EmployeeCafeRepository
	resolver    assignmentResolver
	logger      pkgApp.AppLogger
}

func NewGetEmployeeCafesByEmployeeIDHandler(cafes domain.CafeRepository, employees domain.EmployeeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[EmployeeCafesByEmployeeIDData], EmployeeCafesByEmployeeIDData, []EmployeeCafeDTO] {
	return &getEmployeeCafesByEmployeeIDHandler{
		assignments: assignments,
		resolver:    assignmentResolver{cafes: cafes, employees: employees},
		logger:      logger,
	}
}

func (h *getEmployeeCafesByEmployeeIDHandler) Handle(ctx context.Context, query pkgDomain.Query[EmployeeCafesByEmployeeIDData]) ([]EmployeeCafeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	records, err := h.assignments.FindByEmployeeID(ctx, query.Payload().EmployeeID)
	if err != nil {
		return nil, err
	}
	return h.resolver.dtos(ctx, records)
}

// auditEventHandler records published domain events through the app logger.
type auditEventHandler struct {
	logger pkgApp.AppLogger
}

func NewAuditEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &auditEventHandler{logger: logger}
}

func (h *auditEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	pkgApp.LogInfo(ctx, h.logger, "domain event", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
