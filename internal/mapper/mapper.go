// Package mapper converts between transport shapes and domain entities.
package mapper

import (
	"fmt"

	"github.com/msomdec/userstore/internal/dateformat"
	"github.com/msomdec/userstore/internal/domain"
)

// CreateUser maps a validated request to a new, unsaved User.
// It returns an error instead of panicking when handed a request that has not
// passed validation.
func CreateUser(req *domain.CreateUserRequest) (*domain.User, error) {
	if req == nil {
		return nil, domain.ErrNullInput
	}

	birthday, err := dateformat.Format(req.Birthday)
	if err != nil {
		return nil, err
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidationFailed, req.Role)
	}
	gender, ok := domain.ParseGender(req.Gender)
	if !ok {
		return nil, fmt.Errorf("%w: unknown gender %q", domain.ErrValidationFailed, req.Gender)
	}

	return &domain.User{
		Name:     req.Name,
		Birthday: birthday,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Gender:   gender,
	}, nil
}

// UserResponse projects a User for external consumption.
func UserResponse(u *domain.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Birthday: dateformat.String(u.Birthday),
		Email:    u.Email,
		Role:     u.Role,
		Gender:   u.Gender,
	}
}

func UserResponses(users []domain.User) []domain.UserResponse {
	out := make([]domain.UserResponse, len(users))
	for i := range users {
		out[i] = UserResponse(&users[i])
	}
	return out
}
