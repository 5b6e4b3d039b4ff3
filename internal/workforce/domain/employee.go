package domain

import (
	"context"
	"strings"
	"time"
)

type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	}
	return false
}

type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	EmailAddress string    `json:"emailAddress" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;not null"`
	Gender       Gender    `json:"gender"`
	JoinedDate   time.Time `json:"joinedDate"`
}

// Validate checks the writable fields of an employee. ID and JoinedDate are
// set once at creation and never revalidated here.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrValidation
	}
	if !e.Gender.Valid() {
		return ErrValidation
	}
	return nil
}

type EmployeeRepository interface {
	Save(ctx context.Context, employee Employee) error
	FindByID(ctx context.Context, id string) (Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	// FindByEmailOrPhone matches an employee on either contact field.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
}
