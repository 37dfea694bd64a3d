package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ndis-platform/admin-console/internal/domain"
)

var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("staff_position", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, p := range domain.StaffPositions {
			if p == val {
				return true
			}
		}
		return false
	})
	_ = v.RegisterValidation("staff_status", func(fl validator.FieldLevel) bool {
		return domain.StaffStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		switch domain.Role(fl.Field().String()) {
		case domain.RoleAdmin, domain.RoleStaff, domain.RoleCoordinator:
			return true
		}
		return false
	})
	return v
}

// FieldError describes one failed rule on a JSON field.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// Message renders a human-readable sentence for the failure.
func (f FieldError) Message() string {
	label := strings.ReplaceAll(f.Field, "_", " ")
	switch f.Rule {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, f.Param)
	case "staff_position":
		return label + " must be one of " + strings.Join(domain.StaffPositions, ", ")
	case "staff_status":
		return label + " must be active, inactive or on_leave"
	case "account_role":
		return label + " must be admin, staff or coordinator"
	default:
		return label + " is invalid"
	}
}

// Error reports every field that failed validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message())
	}
	return strings.Join(msgs, "; ")
}

// UserMessage implements the console's user-facing message lookup.
func (e *Error) UserMessage() string {
	return e.Error()
}

// ValidateStruct checks s against its validate tags.
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
