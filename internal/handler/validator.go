package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce   sync.Once
	sharedValidator *Validator
)

// fixedMessages maps validate tags without parameters to client messages
var fixedMessages = map[string]string{
	"required":   "This field is required",
	"provider":   "Invalid provider",
	"iconsource": "Must be name or photo",
	"hexcolor":   "Must be a hex color like #3B82F6",
	"uuid":       "Must be a UUID",
}

// paramMessages maps validate tags whose message embeds the tag parameter
var paramMessages = map[string]string{
	"max": "Must be at most %s",
	"min": "Must be at least %s",
	"gte": "Must be at least %s",
	"lte": "Must be at most %s",
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		for tag, fn := range map[string]validator.Func{
			"provider":   validateProvider,
			"iconsource": validateIconSource,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register %s validation: %v", tag, err))
			}
		}
		sharedValidator = &Validator{validate: v}
	})
	return sharedValidator
}

// ValidateStruct runs the tag rules of s
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields by their json name so errors match the body
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// FormatValidationError turns validator errors into a field -> message map
// keyed by json name. Anything else becomes a single generic entry.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	if format, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Param())
	}
	return "Invalid value"
}

// validateProvider accepts the empty string; required handles presence
func validateProvider(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	return p == "" || domain.ValidProviders[strings.ToLower(p)]
}

func validateIconSource(fl validator.FieldLevel) bool {
	src := domain.IconSource(fl.Field().String())
	return src == domain.IconSourceName || src == domain.IconSourcePhoto
}
