package utils

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Validator bundles struct validation with payload sanitizing.
type Validator struct {
	Validate *validator.Validate
	policy   *bluemonday.Policy
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance. Field names reported
// by validation errors come from the json tags, so error messages match the
// wire format.
func GetValidator() *Validator {
	once.Do(func() {
		validate := validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		instance = &Validator{
			Validate: validate,
			policy:   bluemonday.StrictPolicy(),
		}
	})

	return instance
}

// SanitizeData strips markup from every string field of the bound request
// struct. obj must be a pointer to struct.
func (v *Validator) SanitizeData(obj interface{}) {
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return
	}

	value = value.Elem()
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if field.Kind() == reflect.String && field.CanSet() {
			field.SetString(v.policy.Sanitize(field.String()))
		}
	}
}
