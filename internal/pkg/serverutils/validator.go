package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/pkg/apperr"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("allergen_token", tokenValidator(constant.AllergenIDs()))
	validate.RegisterValidation("diet_token", tokenValidator(constant.DietIDs))
}

// tokenValidator accepts only values from the canonical token list.
func tokenValidator(valid []string) validator.Func {
	set := make(map[string]struct{}, len(valid))
	for _, v := range valid {
		set[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// ValidateRequest runs struct validation tags and converts failures into a
// BadRequest error with a field-level message safe to return to clients.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.BadRequestf("Invalid request payload")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, describeFieldError(fieldError))
	}
	return apperr.BadRequestf("%s", strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "allergen_token":
		return fmt.Sprintf("%s contains an unknown allergen token", fe.Field())
	case "diet_token":
		return fmt.Sprintf("%s contains an unknown diet token", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
