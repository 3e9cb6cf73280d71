package domain

import (
	"context"
	"time"
)

// Role is the closed set of permission levels a user can hold.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Gender is the closed set of genders recorded for a user.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseRole looks up a role by its exact, case-sensitive name.
func ParseRole(name string) (Role, bool) {
	switch Role(name) {
	case RoleAdmin, RoleUser:
		return Role(name), true
	}
	return "", false
}

// ParseGender looks up a gender by its exact, case-sensitive name.
func ParseGender(name string) (Gender, bool) {
	switch Gender(name) {
	case GenderMale, GenderFemale:
		return Gender(name), true
	}
	return "", false
}

// User represents a registered user. Birthday holds a calendar date at UTC midnight.
type User struct {
	ID       int64
	Name     string
	Birthday time.Time
	Email    string
	Password string
	Role     Role
	Gender   Gender
}

// UserRepository defines persistence operations for users.
//
// Lookups report a missing row through the boolean result, never through an error.
type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, bool, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*User, bool, error)
	Save(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) (bool, error)
}
