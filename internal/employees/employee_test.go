// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffdeck/staffdeck/internal/employees"
)

func TestEmployee_Normalize(t *testing.T) {
	employee := &employees.Employee{
		Name:        "  ann lee ",
		Email:       "Ann.Lee@Example.COM",
		Mobile:      " 5551234567 ",
		Designation: "Manager",
		Gender:      "Male",
		Course:      "MCA",
	}

	employee.Normalize()

	// Display name uppercased, every other text field lowercased; mobile
	// is only trimmed.
	assert.Equal(t, "ANN LEE", employee.Name)
	assert.Equal(t, "ann.lee@example.com", employee.Email)
	assert.Equal(t, "5551234567", employee.Mobile)
	assert.Equal(t, "manager", employee.Designation)
	assert.Equal(t, "male", employee.Gender)
	assert.Equal(t, "mca", employee.Course)

	// The folded gender lands inside the closed set.
	assert.Contains(t, employees.Genders, employee.Gender)
}
