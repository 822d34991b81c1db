package models

// User is a learner account. The ID is the externally assigned identifier
// supplied by the caller, not a store-generated one; uniqueness of both the ID
// and the username is enforced by database constraints.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username string `json:"username" gorm:"uniqueIndex;not null;size:100"`
	Email    string `json:"email" gorm:"not null;size:255"`
	Level    string `json:"level" gorm:"size:50"`

	// Password holds the credential hash, never the plaintext. It is excluded
	// from every JSON response.
	Password string `json:"-" gorm:"not null;size:255"`
}

func (User) TableName() string {
	return "users"
}
