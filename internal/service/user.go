package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/mapper"
)

// RequestValidator checks a create request and reports every invalid field.
type RequestValidator interface {
	Validate(req *domain.CreateUserRequest) domain.ValidationResult
}

// UserService handles user creation, login and record maintenance.
type UserService struct {
	users     domain.UserRepository
	validator RequestValidator
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, validator RequestValidator) *UserService {
	return &UserService{users: users, validator: validator}
}

// Create validates req, maps it to a User, saves it and returns its projection.
// Validation failures are reported together in a *domain.ValidationFailedError.
func (s *UserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	user, err := s.toUser(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	slog.InfoContext(ctx, "user created", "id", saved.ID, "role", saved.Role)

	resp := mapper.UserResponse(saved)
	return &resp, nil
}

// Login returns the user whose email and password both match exactly.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.UserResponse, bool, error) {
	user, ok, err := s.users.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return nil, false, fmt.Errorf("find user by credentials: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	resp := mapper.UserResponse(user)
	return &resp, true, nil
}

// Get returns the user with the given id, if any.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.UserResponse, bool, error) {
	user, ok, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("find user by id: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	resp := mapper.UserResponse(user)
	return &resp, true, nil
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return mapper.UserResponses(users), nil
}

// Update replaces every field of user id with the validated contents of req.
func (s *UserService) Update(ctx context.Context, id int64, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	user, err := s.toUser(req)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	slog.InfoContext(ctx, "user updated", "id", id)

	resp := mapper.UserResponse(user)
	return &resp, nil
}

// Delete removes user id and reports whether a row was removed.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	if deleted {
		slog.InfoContext(ctx, "user deleted", "id", id)
	}
	return deleted, nil
}

func (s *UserService) toUser(req *domain.CreateUserRequest) (*domain.User, error) {
	if req == nil {
		return nil, domain.ErrNullInput
	}

	result := s.validator.Validate(req)
	if result.HasErrors() {
		return nil, &domain.ValidationFailedError{Result: result}
	}

	user, err := mapper.CreateUser(req)
	if err != nil {
		return nil, fmt.Errorf("map user: %w", err)
	}
	return user, nil
}
