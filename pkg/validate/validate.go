// Package validate checks required arguments before a client touches the network.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	saaserrors "saasconnector/pkg/errors"
)

var validate = validator.New()

// Required rejects nil, empty strings, zero numbers and empty slices or maps.
func Required(field string, value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return missing(field, "required")
	}

	tag := "required"
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		tag = "required,min=1"
	}

	return check(field, value, tag)
}

// Positive rejects ids that are zero or negative.
func Positive(field string, id int) error {
	if err := validate.Var(id, "gt=0"); err != nil {
		return saaserrors.NewValidationError(field, strconv.Itoa(id), "gt", fmt.Sprintf("%s must be a positive number", field))
	}
	return nil
}

// All runs Required for each field/value pair and returns the first failure.
func All(pairs ...Pair) error {
	for _, p := range pairs {
		if err := Required(p.Field, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Pair names a value for All.
type Pair struct {
	Field string
	Value any
}

// RequiredKeys checks that every key is present and non-empty in params.
func RequiredKeys(params map[string]any, keys ...string) error {
	var missingKeys []string
	for _, key := range keys {
		if Required(key, params[key]) != nil {
			missingKeys = append(missingKeys, key)
		}
	}
	if len(missingKeys) == 0 {
		return nil
	}
	return saaserrors.NewValidationError(
		strings.Join(missingKeys, ","),
		"",
		"required",
		fmt.Sprintf("parameters %s must be not empty", strings.Join(missingKeys, ", ")),
	)
}

func check(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	rule := "required"
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		rule = fieldErrs[0].Tag()
	}
	return missing(field, rule)
}

func missing(field, rule string) error {
	return saaserrors.NewValidationError(field, "", rule, fmt.Sprintf("%s must be not empty", field))
}
