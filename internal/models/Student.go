// internal/models/student.go
package models

import "gorm.io/gorm"

// Student carries no attributes of its own; it anchors memberships, the
// workout plan and physical assessments to a Person.
type Student struct {
	gorm.Model
	PersonID uint    `json:"person_id" gorm:"uniqueIndex"` // Foreign key to Person
	Person   *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`

	Memberships []Membership         `gorm:"foreignKey:StudentID" json:"memberships,omitempty"`
	WorkoutPlan *WorkoutPlan         `gorm:"foreignKey:StudentID" json:"workout_plan,omitempty"`
	Assessments []PhysicalAssessment `gorm:"foreignKey:StudentID" json:"assessments,omitempty"`
}
