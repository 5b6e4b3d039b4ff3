package infrastructure

import (
	"context"
	"sync"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
)

// InMemoryCafeRepository keeps cafes in a map guarded by a RWMutex. It
// enforces the same uniqueness rules the relational schema does, so handlers
// observe identical Conflict outcomes against either backend.
type InMemoryCafeRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Cafe
	logger pkgApp.AppLogger
}

func NewInMemoryCafeRepository(logger pkgApp.AppLogger) *InMemoryCafeRepository {
	return &InMemoryCafeRepository{
		data:   make(map[string]domain.Cafe),
		logger: logger,
	}
}

func (r *InMemoryCafeRepository) Save(ctx context.Context, cafe domain.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data {
		if existing.Name == cafe.Name {
			return domain.ErrCafeNameTaken
		}
	}

	r.data[cafe.ID] = cafe
	return nil
}

func (r *InMemoryCafeRepository) FindByID(ctx context.Context, id string) (domain.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, exists := r.data[id]
	if !exists {
		return domain.Cafe{}, domain.ErrCafeNotFound
	}
	return cafe, nil
}

func (r *InMemoryCafeRepository) FindByName(ctx context.Context, name string) (domain.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cafe := range r.data {
		if cafe.Name == name {
			return cafe, nil
		}
	}
	return domain.Cafe{}, domain.ErrCafeNotFound
}

func (r *InMemoryCafeRepository) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cafes []domain.Cafe
	for _, cafe := range r.data {
		if cafe.Location == location {
			cafes = append(cafes, cafe)
		}
	}
	return cafes, nil
}

func (r *InMemoryCafeRepository) Update(ctx context.Context, cafe domain.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[cafe.ID]; !exists {
		return domain.ErrCafeNotFound
	}
	for _, existing := range r.data {
		if existing.ID != cafe.ID && existing.Name == cafe.Name {
			return domain.ErrCafeNameTaken
		}
	}

	r.data[cafe.ID] = cafe
	return nil
}

func (r *InMemoryCafeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return domain.ErrCafeNotFound
	}
	delete(r.data, id)
	return nil
}

// InMemoryEmployeeRepository keeps employees in a map guarded by a RWMutex.
type InMemoryEmployeeRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Employee
	logger pkgApp.AppLogger
}

func NewInMemoryEmployeeRepository(logger pkgApp.AppLogger) *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{
		data:   make(map[string]domain.Employee),
		logger: logger,
	}
}

func (r *InMemoryEmployeeRepository) Save(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[employee.ID]; exists {
		return domain.ErrEmployeeIDTaken
	}
	for _, existing := range r.data {
		if existing.EmailAddress == employee.EmailAddress || existing.Phone == employee.Phone {
			return domain.ErrContactTaken
		}
	}

	r.data[employee.ID] = employee
	return nil
}

func (r *InMemoryEmployeeRepository) FindByID(ctx context.Context, id string) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.data[id]
	if !exists {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (r *InMemoryEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(r.data))
	for _, employee := range r.data {
		employees = append(employees, employee)
	}
	return employees, nil
}

func (r *InMemoryEmployeeRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, employee := range r.data {
		if employee.EmailAddress == email || employee.Phone == phone {
			return employee, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (r *InMemoryEmployeeRepository) Update(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[employee.ID]; !exists {
		return domain.ErrEmployeeNotFound
	}
	for _, existing := range r.data {
		if existing.ID != employee.ID && (existing.EmailAddress == employee.EmailAddress || existing.Phone == employee.Phone) {
			return domain.ErrContactTaken
		}
	}

	r.data[employee.ID] = employee
	return nil
}

func (r *InMemoryEmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return domain.ErrEmployeeNotFound
	}
	delete(r.data, id)
	return nil
}

// InMemoryEmployeeCafeRepository keeps assignments in a map guarded by a
// RWMutex.
type InMemoryEmployeeCafeRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.EmployeeCafe
	logger pkgApp.AppLogger
}

func NewInMemoryEmployeeCafeRepository(logger pkgApp.AppLogger) *InMemoryEmployeeCafeRepository {
	return &InMemoryEmployeeCafeRepository{
		data:   make(map[string]domain.EmployeeCafe),
		logger: logger,
	}
}

func (r *InMemoryEmployeeCafeRepository) Save(ctx context.Context, assignment domain.EmployeeCafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[assignment.ID]; exists {
		return domain.ErrConflict
	}

	r.data[assignment.ID] = assignment
	return nil
}

func (r *InMemoryEmployeeCafeRepository) FindByID(ctx context.Context, id string) (domain.EmployeeCafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignment, exists := r.data[id]
	if !exists {
		return domain.EmployeeCafe{}, domain.ErrAssignmentNotFound
	}
	return assignment, nil
}

func (r *InMemoryEmployeeCafeRepository) FindAll(ctx context.Context) ([]domain.EmployeeCafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignments := make([]domain.EmployeeCafe, 0, len(r.data))
	for _, assignment := range r.data {
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func (r *InMemoryEmployeeCafeRepository) FindByCafeID(ctx context.Context, cafeID string) ([]domain.EmployeeCafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var assignments []domain.EmployeeCafe
	for _, assignment := range r.data {
		if assignment.CafeID == cafeID {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

func (r *InMemoryEmployeeCafeRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeCafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var assignments []domain.EmployeeCafe
	for _, assignment := range r.data {
		if assignment.EmployeeID == employeeID {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

func (r *InMemoryEmployeeCafeRepository) FindActive(ctx context.Context, cafeID, employeeID string) (domain.EmployeeCafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, assignment := range r.data {
		if assignment.CafeID == cafeID && assignment.EmployeeID == employeeID && assignment.IsActive {
			return assignment, nil
		}
	}
	return domain.EmployeeCafe{}, domain.ErrAssignmentNotFound
}

func (r *InMemoryEmployeeCafeRepository) CountActiveByCafeID(ctx context.Context, cafeID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, assignment := range r.data {
		if assignment.CafeID == cafeID && assignment.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryEmployeeCafeRepository) Update(ctx context.Context, assignment domain.EmployeeCafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[assignment.ID]; !exists {
		return domain.ErrAssignmentNotFound
	}

	r.data[assignment.ID] = assignment
	return nil
}

func (r *InMemoryEmployeeCafeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return domain.ErrAssignmentNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *InMemoryEmployeeCafeRepository) DeleteByCafeID(ctx context.Context, cafeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, assignment := range r.data {
		if assignment.CafeID == cafeID {
			delete(r.data, id)
		}
	}
	return nil
}

func (r *InMemoryEmployeeCafeRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, assignment := range r.data {
		if assignment.EmployeeID == employeeID {
			delete(r.data, id)
		}
	}
	return nil
}
