package models

import (
	"time"

	"gorm.io/gorm"
)

type MembershipType string

const (
	MembershipMonthly    MembershipType = "MONTHLY"
	MembershipQuarterly  MembershipType = "QUARTERLY"
	MembershipSemesterly MembershipType = "SEMESTERLY"
	MembershipAnnual     MembershipType = "ANNUAL"
)

// ValidMembershipType reports whether s names one of the plan durations.
func ValidMembershipType(s string) bool {
	switch MembershipType(s) {
	case MembershipMonthly, MembershipQuarterly, MembershipSemesterly, MembershipAnnual:
		return true
	}
	return false
}

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "ACTIVE"
	MembershipCancelled MembershipStatus = "CANCELLED"
	// MembershipSuspended exists in the schema but no operation produces it yet.
	MembershipSuspended MembershipStatus = "SUSPENDED"
)

// Membership is a student's paid enrollment for a period of time. A student
// accumulates membership rows over the years, but at most one of them is
// ACTIVE at any instant; transitions go through the membership service only.
type Membership struct {
	gorm.Model
	StudentID uint             `json:"student_id" gorm:"index"`
	Type      MembershipType   `json:"type"`
	Status    MembershipStatus `json:"status"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
}
