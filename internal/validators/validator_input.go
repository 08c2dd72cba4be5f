package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-tube/models"
	"github.com/go-playground/validator/v10"
)

// InputValidator checks procedure inputs and webhook payloads. Struct tag
// rules run first through go-playground/validator, then the rules tags
// cannot express.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator constructs an [InputValidator]. Field names in errors
// are the JSON names the client sent.
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &InputValidator{validate: v}
}

// Validate checks obj. When fields are given only those struct fields
// (Go names) are checked.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	for _, field := range fields {
		if _, ok := value.Type().FieldByName(field); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	if len(fields) > 0 {
		return nil
	}
	return v.validateRules(ctx, value.Interface())
}

func (v *InputValidator) validateRules(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.VideoUpdate:
		if value.Title == nil && value.Description == nil && !value.CategoryID.Set && value.Visibility == nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoFieldsToUpdate)
		}
		if category := value.CategoryID.Value; category != nil {
			if err := v.validate.VarCtx(ctx, *category, "uuid"); err != nil {
				return fmt.Errorf("%w: VideoUpdate.categoryId: uuid", ErrInvalidInput)
			}
		}
	case models.WorkflowRequest:
		if !value.Kind.Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrInvalidWorkflowKind, value.Kind)
		}
	case models.ThumbnailPrompt:
		if strings.TrimSpace(value.Prompt) == "" {
			return fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyThumbnailPrompt)
		}
	}

	return nil
}

// describe renders validator errors as "field: rule" pairs.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Namespace()+": "+rule)
	}
	return strings.Join(parts, "; ")
}
