package utils

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags on gin's engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	configure(v)
	return v.RegisterValidation("halfstep", halfStep)
}

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

// ValidateStruct checks the same `binding` tags gin checks, for callers
// that do not come through an HTTP handler.
func ValidateStruct(s interface{}) error {
	structValidatorOnce.Do(func() {
		structValidator = validator.New()
		structValidator.SetTagName("binding")
		configure(structValidator)
		_ = structValidator.RegisterValidation("halfstep", halfStep)
	})
	if err := structValidator.Struct(s); err != nil {
		return BindingError(err)
	}
	return nil
}

// configure reports fields by their json name.
func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// halfStep accepts floats that are whole multiples of 0.5.
func halfStep(fl validator.FieldLevel) bool {
	doubled := fl.Field().Float() * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

// BindingError turns a binding failure into a VALIDATION_ERROR naming the
// first offending field.
func BindingError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			return &AppError{Code: CodeValidationError, Cause: err,
				Message: fmt.Sprintf("El campo %s no es válido (%s=%s)", field, fe.Tag(), fe.Param())}
		}
		return &AppError{Code: CodeValidationError, Cause: err,
			Message: fmt.Sprintf("El campo %s no es válido (%s)", field, fe.Tag())}
	}
	return &AppError{Code: CodeValidationError, Message: "Formato de solicitud no válido", Cause: err}
}
