package domain

import (
	"context"
	"time"
)

// EmployeeCafe links one employee to one cafe over a time interval. A record
// with IsActive false is a historical assignment; unassigning removes the
// record entirely.
type EmployeeCafe struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	CafeID       string    `json:"cafeId" gorm:"index;not null"`
	EmployeeID   string    `json:"employeeId" gorm:"index;not null"`
	AssignedDate time.Time `json:"assignedDate"`
	IsActive     bool      `json:"isActive"`
}

type EmployeeCafeRepository interface {
	Save(ctx context.Context, assignment EmployeeCafe) error
	FindByID(ctx context.Context, id string) (EmployeeCafe, error)
	FindAll(ctx context.Context) ([]EmployeeCafe, error)
	FindByCafeID(ctx context.Context, cafeID string) ([]EmployeeCafe, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeCafe, error)
	// FindActive returns the active assignment for the pair, or
	// ErrAssignmentNotFound when none exists.
	FindActive(ctx context.Context, cafeID, employeeID string) (EmployeeCafe, error)
	CountActiveByCafeID(ctx context.Context, cafeID string) (int64, error)
	Update(ctx context.Context, assignment EmployeeCafe) error
	Delete(ctx context.Context, id string) error
	DeleteByCafeID(ctx context.Context, cafeID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
