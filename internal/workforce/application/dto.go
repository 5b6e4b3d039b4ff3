package application

import (
	"time"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
)

// CafeDTO is the read projection of a cafe. EmployeeCount is the number of
// active assignments referencing the cafe, computed at query time.
type CafeDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Logo          string `json:"logo"`
	Location      string `json:"location"`
	EmployeeCount int64  `json:"employeeCount"`
}

func NewCafeDTO(cafe domain.Cafe, employeeCount int64) CafeDTO {
	return CafeDTO{
		ID:            cafe.ID,
		Name:          cafe.Name,
		Description:   cafe.Description,
		Logo:          cafe.Logo,
		Location:      cafe.Location,
		EmployeeCount: employeeCount,
	}
}

type EmployeeDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	EmailAddress string        `json:"emailAddress"`
	Phone        string        `json:"phone"`
	Gender       domain.Gender `json:"gender"`
	JoinedDate   time.Time     `json:"joinedDate"`
}

func NewEmployeeDTO(employee domain.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           employee.ID,
		Name:         employee.Name,
		EmailAddress: employee.EmailAddress,
		Phone:        employee.Phone,
		Gender:       employee.Gender,
		JoinedDate:   employee.JoinedDate,
	}
}

// EmployeeCafeDTO is the denormalized view of an assignment with both
// foreign names resolved at query time.
type EmployeeCafeDTO struct {
	ID           string    `json:"id"`
	CafeID       string    `json:"cafeId"`
	CafeName     string    `json:"cafeName"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	AssignedDate time.Time `json:"assignedDate"`
	IsActive     bool      `json:"isActive"`
}
