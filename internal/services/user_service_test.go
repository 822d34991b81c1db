package services

import (
	"context"
	"errors"
	"testing"
)

func userCreateReq(id int64, username string) *CreateUserRequest {
	return &CreateUserRequest{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		Level:    "beginner",
		Password: "hunter22",
	}
}

func TestUserServiceCreate(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	user, err := svc.Create(context.Background(), userCreateReq(1, "alice"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Errorf("Create() = %+v", user)
	}
	if user.Password == "hunter22" {
		t.Error("Create() stored the plaintext password")
	}

	got, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("GetByID() username = %q", got.Username)
	}

	types := env.eventTypes()
	if len(types) != 1 || types[0] != "user.created" {
		t.Errorf("published events = %v, want [user.created]", types)
	}
}

func TestUserServiceCreateValidationFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	req := userCreateReq(1, "alice")
	req.Email = "not-an-email"

	_, err := svc.Create(context.Background(), req)
	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("Create() error = %v, want ValidationErrors", err)
	}

	// Nothing reached the store.
	if _, err := svc.GetByID(context.Background(), 1); err == nil {
		t.Error("invalid request was persisted")
	}
}

func TestUserServiceCreateDuplicateID(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	if _, err := svc.Create(context.Background(), userCreateReq(1, "alice")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := svc.Create(context.Background(), userCreateReq(1, "bob"))
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("Create() error = %v, want *ConflictError", err)
	}

	// The existing record is untouched.
	got, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("existing user modified by failed create: %q", got.Username)
	}
}

func TestUserServiceGetByIDNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.manager.User().GetByID(context.Background(), 99)
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("GetByID() error = %v, want *NotFoundError", err)
	}
	if notFoundErr.Resource != "user" || notFoundErr.ID != 99 {
		t.Errorf("NotFoundError = %+v", notFoundErr)
	}
}

func TestUserServiceUpdate(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	if _, err := svc.Create(context.Background(), userCreateReq(1, "alice")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, &UpdateUserRequest{
		Username: "alice",
		Email:    "alice@new.example.com",
		Level:    "advanced",
		Password: "new password",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Level != "advanced" || updated.Email != "alice@new.example.com" {
		t.Errorf("Update() = %+v", updated)
	}
	if updated.Password == "new password" {
		t.Error("Update() stored the plaintext password")
	}
}

func TestUserServiceUpdateNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.manager.User().Update(context.Background(), 99, &UpdateUserRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
		Level:    "beginner",
		Password: "boo",
	})
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("Update() error = %v, want *NotFoundError", err)
	}
}

func TestUserServiceUpdateUsernameConflict(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	if _, err := svc.Create(context.Background(), userCreateReq(1, "alice")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), userCreateReq(2, "bob")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := svc.Update(context.Background(), 2, &UpdateUserRequest{
		Username: "alice",
		Email:    "bob@example.com",
		Level:    "beginner",
		Password: "hunter22",
	})
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("Update() error = %v, want *ConflictError", err)
	}
}

func TestUserServiceDelete(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := env.manager.User()

	if _, err := svc.Create(context.Background(), userCreateReq(1, "alice")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var notFoundErr *NotFoundError
	if err := svc.Delete(context.Background(), 1); !errors.As(err, &notFoundErr) {
		t.Errorf("second Delete() error = %v, want *NotFoundError", err)
	}
}
