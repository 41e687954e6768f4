// internal/models/employee.go
package models

import "gorm.io/gorm"

type EmployeeRole string

const (
	RoleAdmin        EmployeeRole = "ADMIN"
	RoleReceptionist EmployeeRole = "RECEPTIONIST"
	RoleTeacher      EmployeeRole = "TEACHER"
	RoleTrainee      EmployeeRole = "TRAINEE"
)

// ValidEmployeeRole reports whether s names one of the staff roles.
func ValidEmployeeRole(s string) bool {
	switch EmployeeRole(s) {
	case RoleAdmin, RoleReceptionist, RoleTeacher, RoleTrainee:
		return true
	}
	return false
}

type Employee struct {
	gorm.Model
	PersonID uint         `json:"person_id" gorm:"uniqueIndex"` // Foreign key to Person
	Person   *Person      `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	Role     EmployeeRole `json:"role"`
	Tenure   int          `json:"tenure"` // months of service, never negative
	// DO NOT include Name, Email or Password here. They live on the Person.
}
