// Package workforce wires the cafe administration slice: repositories,
// command/query handlers, event subscriptions and the HTTP surface.
package workforce

import (
	"github.com/go-chi/chi/v5"

	"github.com/cafeworks/go-workforce/internal/workforce/application"
	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	"github.com/cafeworks/go-workforce/internal/workforce/infrastructure"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
)

// Repositories groups the persistence ports the slice depends on. Callers
// choose the backend (gorm-backed or in-memory) and hand it over here.
type Repositories struct {
	Cafes       domain.CafeRepository
	Employees   domain.EmployeeRepository
	Assignments domain.EmployeeCafeRepository
}

// NewInMemoryRepositories builds the map-backed repository set.
func NewInMemoryRepositories(logger pkgApp.AppLogger) Repositories {
	return Repositories{
		Cafes:       infrastructure.NewInMemoryCafeRepository(logger),
		Employees:   infrastructure.NewInMemoryEmployeeRepository(logger),
		Assignments: infrastructure.NewInMemoryEmployeeCafeRepository(logger),
	}
}

// Slice owns the fully wired buses for the workforce domain.
type Slice struct {
	CommandBus *pkgInfra.CommandBus
	QueryBus   *pkgInfra.QueryBus
	EventBus   pkgApp.EventBus[pkgDomain.Event[string], string]

	httpHandler *infrastructure.WorkforceHTTPHandler
}

// NewSlice registers every command, query and event handler of the slice on
// the given buses.
func NewSlice(repos Repositories, commandBus *pkgInfra.CommandBus, queryBus *pkgInfra.QueryBus, eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) *Slice {
	// Employees carry the UI-prefixed identifier; cafes and assignments use
	// plain UUIDs.
	employeeIDs := domain.NewEmployeeIDGenerator(nil)
	uuidGenerator := pkgDomain.IDGenerator[string](pkgInfra.GenerateUUID)

	pkgInfra.RegisterCommandHandler(commandBus, application.CreateCafeCommandName,
		application.NewCreateCafeHandler(repos.Cafes, uuidGenerator, eventBus, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.UpdateCafeCommandName,
		application.NewUpdateCafeHandler(repos.Cafes, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.DeleteCafeCommandName,
		application.NewDeleteCafeHandler(repos.Cafes, repos.Assignments, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.CreateEmployeeCommandName,
		application.NewCreateEmployeeHandler(repos.Employees, employeeIDs, eventBus, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.UpdateEmployeeCommandName,
		application.NewUpdateEmployeeHandler(repos.Employees, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.DeleteEmployeeCommandName,
		application.NewDeleteEmployeeHandler(repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.AssignEmployeeCommandName,
		application.NewAssignEmployeeHandler(repos.Cafes, repos.Employees, repos.Assignments, uuidGenerator, eventBus, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.UpdateAssignmentCommandName,
		application.NewUpdateAssignmentHandler(repos.Cafes, repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterCommandHandler(commandBus, application.UnassignEmployeeCommandName,
		application.NewUnassignEmployeeHandler(repos.Assignments, eventBus, logger))

	pkgInfra.RegisterQueryHandler(queryBus, application.GetCafeByIDQueryName,
		application.NewGetCafeByIDHandler(repos.Cafes, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.CafeNameExistsQueryName,
		application.NewCafeNameExistsHandler(repos.Cafes, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetCafesByLocationQueryName,
		application.NewGetCafesByLocationHandler(repos.Cafes, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetAllEmployeesQueryName,
		application.NewGetAllEmployeesHandler(repos.Employees, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeeByIDQueryName,
		application.NewGetEmployeeByIDHandler(repos.Employees, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeeByEmailOrPhoneQueryName,
		application.NewGetEmployeeByEmailOrPhoneHandler(repos.Employees, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeesByCafeIDQueryName,
		application.NewGetEmployeesByCafeIDHandler(repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetAllEmployeeCafesQueryName,
		application.NewGetAllEmployeeCafesHandler(repos.Cafes, repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeeCafeByIDQueryName,
		application.NewGetEmployeeCafeByIDHandler(repos.Cafes, repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeeCafesByCafeIDQueryName,
		application.NewGetEmployeeCafesByCafeIDHandler(repos.Cafes, repos.Employees, repos.Assignments, logger))
	pkgInfra.RegisterQueryHandler(queryBus, application.GetEmployeeCafesByEmployeeIDQueryName,
		application.NewGetEmployeeCafesByEmployeeIDHandler(repos.Cafes, repos.Employees, repos.Assignments, logger))

	audit := application.NewAuditEventHandler(logger)
	for _, name := range application.EventNames() {
		eventBus.RegisterHandler(name, audit)
	}

	return &Slice{
		CommandBus:  commandBus,
		QueryBus:    queryBus,
		EventBus:    eventBus,
		httpHandler: infrastructure.NewWorkforceHTTPHandler(commandBus, queryBus),
	}
}

// AssertHandlers verifies that every command and query name the slice exposes
// has a registered handler. Run it at startup so misconfiguration fails the
// process instead of the first request.
func (s *Slice) AssertHandlers() error {
	if err := s.CommandBus.AssertRegistered(application.CommandNames()...); err != nil {
		return err
	}
	return s.QueryBus.AssertRegistered(application.QueryNames()...)
}

// RegisterRoutes mounts the slice's HTTP surface on the router.
func (s *Slice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
