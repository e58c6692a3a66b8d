package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-newsletter/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation of a
// [models.SubscriptionForm] to a subset of its fields.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// textTag is the custom validation tag accepting only strings that can be
// stored in a TEXT column.
const textTag = "text"

// structFields maps the public field names onto the Go field names expected
// by [validator.Validate.StructPartial].
var structFields = map[string]string{
	FieldName:  "Name",
	FieldEmail: "Email",
}

// SubscriptionValidator implements [Validator] for subscription forms using
// the `validate` struct tags declared on [models.SubscriptionForm].
type SubscriptionValidator struct {
	validate *validator.Validate
}

// NewSubscriptionValidator constructs a SubscriptionValidator and returns it
// as the Validator interface.
func NewSubscriptionValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report the form key ("name", "email") instead of the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(textTag, isStorableText)

	return &SubscriptionValidator{validate: v}
}

// Validate checks a models.SubscriptionForm (value or pointer). Leading and
// trailing whitespace is ignored, so a blank name counts as empty.
//
// Returns ErrUnsupportedType for any other type and ErrUnknownField when a
// requested field does not exist. Validation failures are reported through
// the package's sentinel errors.
func (v *SubscriptionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubscriptionForm:
		return v.validateSubscriptionForm(ctx, value, fields...)
	case *models.SubscriptionForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubscriptionForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubscriptionValidator) validateSubscriptionForm(ctx context.Context, form models.SubscriptionForm, fields ...string) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, form)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, form, names...)
	}

	return mapValidationError(err)
}

func isStorableText(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// mapValidationError converts the first failed constraint into a sentinel
// error. Errors that are not validation failures are returned unchanged.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	if fe.Tag() == textTag {
		return fmt.Errorf("%w: %s", ErrMalformedText, fe.Field())
	}

	switch fe.Field() {
	case FieldName:
		if fe.Tag() == "max" {
			return ErrNameTooLong
		}
		return ErrEmptyName
	case FieldEmail:
		if fe.Tag() == "required" {
			return ErrEmptyEmail
		}
		return ErrInvalidEmail
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, fe.Field())
	}
}
