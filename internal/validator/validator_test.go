package validator

import "testing"

func validUserCreate() UserCreateRequest {
	return UserCreateRequest{
		ID:       1,
		Username: "apprentice",
		Email:    "apprentice@example.com",
		Level:    "beginner",
		Password: "hunter22",
	}
}

func TestValidateUserCreateRequest(t *testing.T) {
	t.Parallel()

	v := New()

	if errs := v.Validate(validUserCreate()); len(errs) > 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateUserCreateRequestFailures(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name    string
		mutate  func(*UserCreateRequest)
		field   string
		rule    string
	}{
		{"zero id", func(r *UserCreateRequest) { r.ID = 0 }, "ID", "required"},
		{"negative id", func(r *UserCreateRequest) { r.ID = -5 }, "ID", "gt"},
		{"missing username", func(r *UserCreateRequest) { r.Username = "" }, "Username", "required"},
		{"bad email", func(r *UserCreateRequest) { r.Email = "not-an-email" }, "Email", "email"},
		{"missing level", func(r *UserCreateRequest) { r.Level = "" }, "Level", "required"},
		{"missing password", func(r *UserCreateRequest) { r.Password = "" }, "Password", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserCreate()
			tt.mutate(&req)

			errs := v.Validate(&req)
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.field)
			}
			if errs[0].Rule != tt.rule {
				t.Errorf("Rule = %q, want %q", errs[0].Rule, tt.rule)
			}
		})
	}
}

func TestValidateSessionCreateRequest(t *testing.T) {
	t.Parallel()

	v := New()

	req := SessionCreateRequest{
		ID:           10,
		Topic:        "goroutines",
		Date:         "2026-09-15",
		InstructorID: 2,
		UserID:       1,
	}
	if errs := v.Validate(&req); len(errs) > 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}

	req.UserID = 0
	errs := v.Validate(&req)
	if len(errs) != 1 || errs[0].Field != "UserID" {
		t.Errorf("Validate() = %v, want one UserID error", errs)
	}
}

func TestValidateInstructorOptionalFields(t *testing.T) {
	t.Parallel()

	v := New()

	// Role and ModelVersion are optional; nil passes.
	req := InstructorCreateRequest{
		ID:        2,
		Name:      "Ada",
		Expertise: "distributed systems",
	}
	if errs := v.Validate(&req); len(errs) > 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	t.Parallel()

	var none ValidationErrors
	if none.Error() != "validation failed" {
		t.Errorf("empty Error() = %q", none.Error())
	}

	one := ValidationErrors{{Field: "Email", Message: "must be a valid email address"}}
	if one.Error() != "validation failed: Email must be a valid email address" {
		t.Errorf("single Error() = %q", one.Error())
	}

	two := ValidationErrors{{Field: "A"}, {Field: "B"}}
	if two.Error() != "validation failed: 2 field errors" {
		t.Errorf("multi Error() = %q", two.Error())
	}
}
