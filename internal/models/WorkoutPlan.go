package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// WorkoutPlan is the single training sheet kept per student. The content is
// an opaque JSON document authored on the client; the backend never inspects
// its shape.
type WorkoutPlan struct {
	gorm.Model

	StudentID  uint `json:"student_id" gorm:"uniqueIndex"`
	EmployeeID uint `json:"employee_id"` // employee who last edited the plan

	// Stored as jsonb; provide a JSON document when creating or updating.
	Content json.RawMessage `gorm:"type:jsonb" json:"content"`
}
