package models

// Instructor is either a human mentor (Role set) or an automated agent
// (ModelVersion set). Exactly one of the two is expected to be populated,
// though this is not enforced.
type Instructor struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name         string  `json:"name" gorm:"not null;size:100"`
	Role         *string `json:"role" gorm:"size:100"`
	ModelVersion *string `json:"model_version" gorm:"size:100"`
	Expertise    string  `json:"expertise" gorm:"size:255"`
}

func (Instructor) TableName() string {
	return "instructors"
}
