package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/userstore/internal/domain"
)

// DemoUsers is the sample data installed by the seed command.
var DemoUsers = []domain.CreateUserRequest{
	{Name: "Ivan", Birthday: "1990-01-10", Email: "ivan@gmail.com", Password: "111", Role: "ADMIN", Gender: "MALE"},
	{Name: "Petr", Birthday: "1995-10-19", Email: "petr@gmail.com", Password: "123", Role: "USER", Gender: "MALE"},
	{Name: "Sveta", Birthday: "2001-12-23", Email: "sveta@gmail.com", Password: "321", Role: "USER", Gender: "FEMALE"},
	{Name: "Vlad", Birthday: "1984-03-14", Email: "vlad@gmail.com", Password: "456", Role: "USER", Gender: "MALE"},
	{Name: "Kate", Birthday: "1989-09-09", Email: "kate@gmail.com", Password: "789", Role: "ADMIN", Gender: "FEMALE"},
}

// Seed creates each request in order and returns how many were created.
// Requests that collide with an existing row are skipped (idempotent).
func (s *UserService) Seed(ctx context.Context, reqs []domain.CreateUserRequest) (int, error) {
	created := 0
	for i := range reqs {
		_, err := s.Create(ctx, &reqs[i])
		if errors.Is(err, domain.ErrConstraintViolation) {
			slog.InfoContext(ctx, "seed user already present", "email", reqs[i].Email)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", reqs[i].Email, err)
		}
		created++
	}
	return created, nil
}
