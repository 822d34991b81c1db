package validator

// UserCreateRequest carries a full user document for direct creation or
// signup. The id is the external identifier assigned by the caller.
type UserCreateRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Level    string `json:"level" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest replaces a user document in full; the identifier comes
// from the request path.
type UserUpdateRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Level    string `json:"level" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type InstructorCreateRequest struct {
	ID           int64   `json:"id" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required,max=100"`
	Role         *string `json:"role" validate:"omitempty,max=100"`
	ModelVersion *string `json:"model_version" validate:"omitempty,max=100"`
	Expertise    string  `json:"expertise" validate:"required,max=255"`
}

type InstructorUpdateRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Role         *string `json:"role" validate:"omitempty,max=100"`
	ModelVersion *string `json:"model_version" validate:"omitempty,max=100"`
	Expertise    string  `json:"expertise" validate:"required,max=255"`
}

// SessionCreateRequest references a user and an instructor by external id;
// both must resolve before the session is persisted. Date is free-form.
type SessionCreateRequest struct {
	ID           int64  `json:"id" validate:"required,gt=0"`
	Topic        string `json:"topic" validate:"required,max=255"`
	Date         string `json:"date" validate:"required,max=100"`
	InstructorID int64  `json:"instructor_id" validate:"required,gt=0"`
	UserID       int64  `json:"user_id" validate:"required,gt=0"`
}

type SessionUpdateRequest struct {
	Topic        string `json:"topic" validate:"required,max=255"`
	Date         string `json:"date" validate:"required,max=100"`
	InstructorID int64  `json:"instructor_id" validate:"required,gt=0"`
	UserID       int64  `json:"user_id" validate:"required,gt=0"`
}

// LoginRequest binds from the query string or a JSON body.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
