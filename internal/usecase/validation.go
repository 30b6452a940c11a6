package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"claims_service/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var fieldValidators = map[string]validator.Func{
	"prestationType": func(fl validator.FieldLevel) bool {
		return entities.IsValidPrestationType(entities.PrestationType(fl.Field().String()))
	},
	"workflow": func(fl validator.FieldLevel) bool {
		return entities.Workflow(fl.Field().String()).IsValid()
	},
	"paymentMode": func(fl validator.FieldLevel) bool {
		return entities.PaymentModeKind(fl.Field().String()).IsValid()
	},
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range fieldValidators {
		if err := validate.RegisterValidation(tag, fn, false); err != nil {
			panic(fmt.Sprintf("failed to register validation for %s: %s", tag, err))
		}
	}
}

// validateStruct runs the struct tags of s and folds every failure into one
// *entities.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]entities.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, entities.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return entities.NewValidationError(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "prestationType":
		return fmt.Sprintf("unknown prestation type %q", fe.Value())
	case "workflow":
		return fmt.Sprintf("unknown workflow %q", fe.Value())
	case "paymentMode":
		return fmt.Sprintf("unknown payment mode %q", fe.Value())
	case "min", "max", "gte", "lte":
		return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
	default:
		return "invalid value"
	}
}
