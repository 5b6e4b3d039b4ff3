package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/cafeworks/go-workforce/internal/workforce"
	"github.com/cafeworks/go-workforce/internal/workforce/application"
	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
	"github.com/cafeworks/go-workforce/pkg/infrastructure/channels/adapter"
	watermillLogAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/zaplogger/adapter"
)

// Smoke run of the slice against a gochannel pubsub: open a cafe, hire an
// employee, assign them, then read the assignment back.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	commandBus := pkgInfra.NewCommandBus(appLogger)
	queryBus := pkgInfra.NewQueryBus(appLogger)
	eventBus := adapter.NewWatermillEventBus[pkgDomain.Event[string], string](pubSub, appLogger)

	repos := workforce.NewInMemoryRepositories(appLogger)
	slice := workforce.NewSlice(repos, commandBus, queryBus, eventBus, appLogger)
	if err := slice.AssertHandlers(); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cafe, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.CreateCafeData], application.CreateCafeData, domain.Cafe](ctx, commandBus, application.NewCreateCafeCommand(application.CreateCafeData{
		Name:        "Bean There",
		Description: "Corner espresso bar",
		Location:    "Ang Mo Kio",
	}))
	if err != nil {
		appLogger.Error(ctx, "error creating cafe", map[string]interface{}{"error": err})
		return
	}

	employee, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.CreateEmployeeData], application.CreateEmployeeData, domain.Employee](ctx, commandBus, application.NewCreateEmployeeCommand(application.CreateEmployeeData{
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
		Phone:        "91234567",
		Gender:       domain.GenderMale,
	}))
	if err != nil {
		appLogger.Error(ctx, "error creating employee", map[string]interface{}{"error": err})
		return
	}

	assignment, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.AssignEmployeeData], application.AssignEmployeeData, domain.EmployeeCafe](ctx, commandBus, application.NewAssignEmployeeCommand(application.AssignEmployeeData{
		CafeID:     cafe.ID,
		EmployeeID: employee.ID,
	}))
	if err != nil {
		appLogger.Error(ctx, "error assigning employee", map[string]interface{}{"error": err})
		return
	}

	dto, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeCafeByIDData], application.EmployeeCafeByIDData, application.EmployeeCafeDTO](ctx, queryBus, application.NewGetEmployeeCafeByIDQuery(application.EmployeeCafeByIDData{
		ID: assignment.ID,
	}))
	if err != nil {
		appLogger.Error(ctx, "error fetching assignment", map[string]interface{}{"error": err})
		return
	}

	appLogger.Info(ctx, "assignment round trip complete", map[string]interface{}{
		"assignment": dto,
	})
}
