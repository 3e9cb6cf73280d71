package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/service"
)

func TestUserService_Seed_Idempotent(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	n, err := svc.Seed(ctx, service.DemoUsers)
	if err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if n != len(service.DemoUsers) {
		t.Fatalf("expected %d users created, got %d", len(service.DemoUsers), n)
	}

	n, err = svc.Seed(ctx, service.DemoUsers)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no users created on reseed, got %d", n)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != len(service.DemoUsers) {
		t.Fatalf("expected %d users, got %d", len(service.DemoUsers), len(list))
	}
}

func TestUserService_Seed_InvalidRequest(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	reqs := []domain.CreateUserRequest{maxRequest, {Name: "broken"}}
	n, err := svc.Seed(context.Background(), reqs)
	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 user created before the failure, got %d", n)
	}
}
