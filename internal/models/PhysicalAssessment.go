package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// PhysicalAssessment is one evaluation session recorded for a student by a
// staff member. Measurements (weight, body fat, girths, ...) travel as an
// opaque JSON document the same way workout plan content does.
type PhysicalAssessment struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"index"`
	TeacherID uint `json:"teacher_id"` // authoring employee id

	Content json.RawMessage `gorm:"type:jsonb" json:"content"`
}
