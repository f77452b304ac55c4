package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest runs the struct's validate tags and reports the first failure
// as a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Validation(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return apperror.Validation(fmt.Sprintf("%s is required.", fe.Field()))
	default:
		return apperror.Validation(fmt.Sprintf("%s is invalid.", fe.Field()))
	}
}

// ParseJSONBody decodes the request body into out. An empty body leaves out
// untouched so that field validation reports what is missing.
func ParseJSONBody(ctx *fiber.Ctx, out interface{}) error {
	body := ctx.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperror.Validation("Invalid JSON body.")
	}
	return nil
}
