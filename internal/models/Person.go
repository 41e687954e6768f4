package models

import "gorm.io/gorm"

// Person is the identity root for every human in the system. A person may
// additionally be an Employee, a Student, both, or neither; the optional
// specializations below are independent of each other.
type Person struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	CPF      string `json:"cpf" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Avatar   string `json:"avatar,omitempty"`

	// Specialization relations
	Employee *Employee `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee,omitempty"`
	Student  *Student  `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student,omitempty"`
}
