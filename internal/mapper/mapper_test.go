package mapper_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/mapper"
)

func TestCreateUser(t *testing.T) {
	req := &domain.CreateUserRequest{
		Name:     "Ivan",
		Birthday: "2000-01-01",
		Email:    "ivan@gmail.com",
		Password: "123",
		Role:     "ADMIN",
		Gender:   "MALE",
	}

	got, err := mapper.CreateUser(req)
	require.NoError(t, err)

	assert.Equal(t, &domain.User{
		Name:     "Ivan",
		Birthday: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:    "ivan@gmail.com",
		Password: "123",
		Role:     domain.RoleAdmin,
		Gender:   domain.GenderMale,
	}, got)
}

func TestCreateUser_Unvalidated(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.CreateUserRequest
		want error
	}{
		{"nil", nil, domain.ErrNullInput},
		{"bad birthday", &domain.CreateUserRequest{Birthday: "2007.01.28", Role: "USER", Gender: "MALE"}, domain.ErrDateParse},
		{"missing role", &domain.CreateUserRequest{Birthday: "2007-01-28", Gender: "MALE"}, domain.ErrValidationFailed},
		{"bad gender", &domain.CreateUserRequest{Birthday: "2007-01-28", Role: "USER", Gender: "female"}, domain.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mapper.CreateUser(tt.req)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestUserResponse(t *testing.T) {
	u := &domain.User{
		ID:       7,
		Name:     "Sveta",
		Birthday: time.Date(1986, time.July, 2, 0, 0, 0, 0, time.UTC),
		Email:    "sveta@gmail.com",
		Password: "secret",
		Role:     domain.RoleUser,
		Gender:   domain.GenderFemale,
	}

	assert.Equal(t, domain.UserResponse{
		ID:       7,
		Name:     "Sveta",
		Birthday: "1986-07-02",
		Email:    "sveta@gmail.com",
		Role:     domain.RoleUser,
		Gender:   domain.GenderFemale,
	}, mapper.UserResponse(u))
}

func TestUserResponses(t *testing.T) {
	users := []domain.User{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	got := mapper.UserResponses(users)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "b", got[1].Name)

	assert.Empty(t, mapper.UserResponses(nil))
	assert.NotNil(t, mapper.UserResponses(nil))
}
