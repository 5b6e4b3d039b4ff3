package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cafeworks/go-workforce/internal/workforce/application"
	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
)

const requestTimeout = 10 * time.Second

// WorkforceHTTPHandler translates HTTP requests into command/query values,
// dispatches them, and serializes the typed results.
type WorkforceHTTPHandler struct {
	commandBus *pkgInfra.CommandBus
	queryBus   *pkgInfra.QueryBus
}

func NewWorkforceHTTPHandler(commandBus *pkgInfra.CommandBus, queryBus *pkgInfra.QueryBus) *WorkforceHTTPHandler {
	return &WorkforceHTTPHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

func (h *WorkforceHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Route("/cafes", func(r chi.Router) {
		r.Post("/", h.handleCreateCafe)
		r.Get("/", h.handleGetCafesByLocation)
		r.Get("/name-exists", h.handleCafeNameExists)
		r.Get("/{cafeID}", h.handleGetCafeByID)
		r.Put("/{cafeID}", h.handleUpdateCafe)
		r.Delete("/{cafeID}", h.handleDeleteCafe)
		r.Get("/{cafeID}/employees", h.handleGetEmployeesByCafeID)
		r.Get("/{cafeID}/assignments", h.handleGetEmployeeCafesByCafeID)
	})

	router.Route("/employees", func(r chi.Router) {
		r.Post("/", h.handleCreateEmployee)
		r.Get("/", h.handleGetAllEmployees)
		r.Get("/lookup", h.handleGetEmployeeByEmailOrPhone)
		r.Get("/{employeeID}", h.handleGetEmployeeByID)
		r.Put("/{employeeID}", h.handleUpdateEmployee)
		r.Delete("/{employeeID}", h.handleDeleteEmployee)
		r.Get("/{employeeID}/assignments", h.handleGetEmployeeCafesByEmployeeID)
	})

	router.Route("/assignments", func(r chi.Router) {
		r.Post("/", h.handleAssignEmployee)
		r.Get("/", h.handleGetAllEmployeeCafes)
		r.Get("/{assignmentID}", h.handleGetEmployeeCafeByID)
		r.Put("/{assignmentID}", h.handleUpdateAssignment)
		r.Delete("/{assignmentID}", h.handleUnassignEmployee)
	})
}

func (h *WorkforceHTTPHandler) handleCreateCafe(w http.ResponseWriter, r *http.Request) {
	var data application.CreateCafeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cafe, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.CreateCafeData], application.CreateCafeData, domain.Cafe](ctx, h.commandBus, application.NewCreateCafeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cafe)
}

func (h *WorkforceHTTPHandler) handleUpdateCafe(w http.ResponseWriter, r *http.Request) {
	var data application.UpdateCafeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	data.ID = chi.URLParam(r, "cafeID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cafe, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.UpdateCafeData], application.UpdateCafeData, domain.Cafe](ctx, h.commandBus, application.NewUpdateCafeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafe)
}

func (h *WorkforceHTTPHandler) handleDeleteCafe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.DeleteCafeData{ID: chi.URLParam(r, "cafeID")}
	deleted, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.DeleteCafeData], application.DeleteCafeData, bool](ctx, h.commandBus, application.NewDeleteCafeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *WorkforceHTTPHandler) handleGetCafeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.CafeByIDData{ID: chi.URLParam(r, "cafeID")}
	dto, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.CafeByIDData], application.CafeByIDData, application.CafeDTO](ctx, h.queryBus, application.NewGetCafeByIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *WorkforceHTTPHandler) handleCafeNameExists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.CafeNameExistsData{Name: r.URL.Query().Get("name")}
	exists, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.CafeNameExistsData], application.CafeNameExistsData, bool](ctx, h.queryBus, application.NewCafeNameExistsQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *WorkforceHTTPHandler) handleGetCafesByLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.CafesByLocationData{Location: r.URL.Query().Get("location")}
	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.CafesByLocationData], application.CafesByLocationData, []application.CafeDTO](ctx, h.queryBus, application.NewGetCafesByLocationQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *WorkforceHTTPHandler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var data application.CreateEmployeeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	employee, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.CreateEmployeeData], application.CreateEmployeeData, domain.Employee](ctx, h.commandBus, application.NewCreateEmployeeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *WorkforceHTTPHandler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var data application.UpdateEmployeeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	data.ID = chi.URLParam(r, "employeeID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	employee, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.UpdateEmployeeData], application.UpdateEmployeeData, domain.Employee](ctx, h.commandBus, application.NewUpdateEmployeeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *WorkforceHTTPHandler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.DeleteEmployeeData{ID: chi.URLParam(r, "employeeID")}
	deleted, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.DeleteEmployeeData], application.DeleteEmployeeData, bool](ctx, h.commandBus, application.NewDeleteEmployeeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *WorkforceHTTPHandler) handleGetAllEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.AllEmployeesData], application.AllEmployeesData, []application.EmployeeDTO](ctx, h.queryBus, application.NewGetAllEmployeesQuery())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *WorkforceHTTPHandler) handleGetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeeByIDData{ID: chi.URLParam(r, "employeeID")}
	dto, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeByIDData], application.EmployeeByIDData, application.EmployeeDTO](ctx, h.queryBus, application.NewGetEmployeeByIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *WorkforceHTTPHandler) handleGetEmployeeByEmailOrPhone(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeeByEmailOrPhoneData{
		EmailAddress: r.URL.Query().Get("email"),
		Phone:        r.URL.Query().Get("phone"),
	}
	dto, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeByEmailOrPhoneData], application.EmployeeByEmailOrPhoneData, application.EmployeeDTO](ctx, h.queryBus, application.NewGetEmployeeByEmailOrPhoneQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *WorkforceHTTPHandler) handleGetEmployeesByCafeID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeesByCafeIDData{CafeID: chi.URLParam(r, "cafeID")}
	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeesByCafeIDData], application.EmployeesByCafeIDData, []application.EmployeeDTO](ctx, h.queryBus, application.NewGetEmployeesByCafeIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *WorkforceHTTPHandler) handleAssignEmployee(w http.ResponseWriter, r *http.Request) {
	var data application.AssignEmployeeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	assignment, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.AssignEmployeeData], application.AssignEmployeeData, domain.EmployeeCafe](ctx, h.commandBus, application.NewAssignEmployeeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *WorkforceHTTPHandler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var data application.UpdateAssignmentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	data.ID = chi.URLParam(r, "assignmentID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	assignment, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.UpdateAssignmentData], application.UpdateAssignmentData, domain.EmployeeCafe](ctx, h.commandBus, application.NewUpdateAssignmentCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

func (h *WorkforceHTTPHandler) handleUnassignEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.UnassignEmployeeData{ID: chi.URLParam(r, "assignmentID")}
	deleted, err := pkgInfra.DispatchCommand[pkgDomain.Command[application.UnassignEmployeeData], application.UnassignEmployeeData, bool](ctx, h.commandBus, application.NewUnassignEmployeeCommand(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *WorkforceHTTPHandler) handleGetAllEmployeeCafes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.AllEmployeeCafesData], application.AllEmployeeCafesData, []application.EmployeeCafeDTO](ctx, h.queryBus, application.NewGetAllEmployeeCafesQuery())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *WorkforceHTTPHandler) handleGetEmployeeCafeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeeCafeByIDData{ID: chi.URLParam(r, "assignmentID")}
	dto, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeCafeByIDData], application.EmployeeCafeByIDData, application.EmployeeCafeDTO](ctx, h.queryBus, application.NewGetEmployeeCafeByIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *WorkforceHTTPHandler) handleGetEmployeeCafesByCafeID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeeCafesByCafeIDData{CafeID: chi.URLParam(r, "cafeID")}
	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeCafesByCafeIDData], application.EmployeeCafesByCafeIDData, []application.EmployeeCafeDTO](ctx, h.queryBus, application.NewGetEmployeeCafesByCafeIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *WorkforceHTTPHandler) handleGetEmployeeCafesByEmployeeID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := application.EmployeeCafesByEmployeeIDData{EmployeeID: chi.URLParam(r, "employeeID")}
	dtos, err := pkgInfra.DispatchQuery[pkgDomain.Query[application.EmployeeCafesByEmployeeIDData], application.EmployeeCafesByEmployeeIDData, []application.EmployeeCafeDTO](ctx, h.queryBus, application.NewGetEmployeeCafesByEmployeeIDQuery(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
