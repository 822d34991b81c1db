package models

import (
	"gorm.io/datatypes"
)

// Session links a user and an instructor for a tutoring appointment. The User
// and Instructor columns are denormalized snapshots of the referenced records
// taken at create/update time: later edits to the referenced user or
// instructor do not rewrite them. This trades staleness for join-free reads.
type Session struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Topic        string `json:"topic" gorm:"not null;size:255"`
	Date         string `json:"date" gorm:"size:100"` // free-form, no calendar validation
	InstructorID int64  `json:"instructor_id" gorm:"not null"`
	UserID       int64  `json:"user_id" gorm:"not null"`

	User       datatypes.JSON `json:"user" gorm:"type:jsonb"`
	Instructor datatypes.JSON `json:"instructor" gorm:"type:jsonb"`
}

func (Session) TableName() string {
	return "sessions"
}
