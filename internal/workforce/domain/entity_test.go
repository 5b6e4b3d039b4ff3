package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCafeValidate(t *testing.T) {
	cafe := Cafe{ID: "cafe-1", Name: "Bean There", Location: "Ang Mo Kio"}
	assert.NoError(t, cafe.Validate())

	cafe.Name = "   "
	assert.True(t, errors.Is(cafe.Validate(), ErrValidation))
}

func TestEmployeeValidate(t *testing.T) {
	employee := Employee{
		ID:           "UIABCDEFGH",
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
		Phone:        "91234567",
		Gender:       GenderMale,
	}
	assert.NoError(t, employee.Validate())

	employee.Gender = "Unknown"
	assert.True(t, errors.Is(employee.Validate(), ErrValidation))

	employee.Gender = GenderFemale
	employee.Name = ""
	assert.True(t, errors.Is(employee.Validate(), ErrValidation))
}
