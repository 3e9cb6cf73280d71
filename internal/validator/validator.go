// Package validator checks untrusted user input and reports every invalid
// field at once.
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/msomdec/userstore/internal/dateformat"
	"github.com/msomdec/userstore/internal/domain"
)

// Error codes reported by CreateUserValidator.
const (
	CodeInvalidBirthday = "invalid.birthday"
	CodeInvalidGender   = "invalid.gender"
	CodeInvalidRole     = "invalid.role"
)

const (
	tagDate   = "isodate"
	tagGender = "user_gender"
	tagRole   = "user_role"
)

// fieldCheck pairs a validation tag with the error reported when it fails.
type fieldCheck struct {
	value func(*domain.CreateUserRequest) string
	tag   string
	err   domain.ValidationError
}

var createChecks = []fieldCheck{
	{
		value: func(r *domain.CreateUserRequest) string { return r.Birthday },
		tag:   tagDate,
		err:   domain.NewValidationError(CodeInvalidBirthday, "Birthday is invalid"),
	},
	{
		value: func(r *domain.CreateUserRequest) string { return r.Gender },
		tag:   tagGender,
		err:   domain.NewValidationError(CodeInvalidGender, "Gender is invalid"),
	},
	{
		value: func(r *domain.CreateUserRequest) string { return r.Role },
		tag:   tagRole,
		err:   domain.NewValidationError(CodeInvalidRole, "Role is invalid"),
	},
}

// CreateUserValidator validates CreateUserRequest values.
type CreateUserValidator struct {
	validate *validator.Validate
}

// NewCreateUserValidator creates a CreateUserValidator with the user field tags registered.
func NewCreateUserValidator() *CreateUserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, tagDate, func(fl validator.FieldLevel) bool {
		return dateformat.IsValid(fl.Field().String())
	})
	mustRegister(v, tagGender, func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseGender(fl.Field().String())
		return ok
	})
	mustRegister(v, tagRole, func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRole(fl.Field().String())
		return ok
	})
	return &CreateUserValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn, true); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

// Validate runs the birthday, gender and role checks in that order and
// collects one error per failing field. A nil request fails every check.
func (v *CreateUserValidator) Validate(req *domain.CreateUserRequest) domain.ValidationResult {
	var result domain.ValidationResult
	if req == nil {
		req = &domain.CreateUserRequest{}
	}
	for _, check := range createChecks {
		if err := v.validate.Var(check.value(req), check.tag); err != nil {
			result.Add(check.err)
		}
	}
	return result
}
