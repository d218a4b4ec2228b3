// Package envstruct fills struct fields from environment variables declared
// with `env:"NAME"` tags.
package envstruct

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEnvNotSet    = errors.New("environment variable not set")
	ErrInvalidValue = errors.New("v must be a pointer to a struct")
)

// Populate sets the tagged fields of *struct v from the environment.
//
// lookupEnv has the same signature as [os.LookupEnv]. A field tagged
// `env:"NAME"` receives the value of NAME. When NAME is unset the
// `envDefault:"value"` tag supplies the value; without it Populate returns
// ErrEnvNotSet. Only string fields are supported. Field errors are collected
// and joined so one bad variable does not hide the rest.
func Populate(v any, lookupEnv func(string) (string, bool)) error {
	ptr := reflect.ValueOf(v)
	if ptr.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: not pointer: %v", ErrInvalidValue, v)
	}
	target := ptr.Elem()
	if target.Kind() != reflect.Struct {
		return fmt.Errorf("%w: not struct: %v", ErrInvalidValue, v)
	}

	targetType := target.Type()

	var errs []error
	for i := range targetType.NumField() {
		field := target.Field(i)
		fieldType := targetType.Field(i)

		name, tagged := fieldType.Tag.Lookup("env")
		if !tagged {
			continue
		}

		if !field.CanSet() {
			errs = append(errs, fmt.Errorf("%w: cannot set field: %s",
				ErrInvalidValue, fieldType.Name))
			continue
		}
		if field.Kind() != reflect.String {
			errs = append(errs, fmt.Errorf("%w: only strings are supported - field: %s, type: %s, env: %s",
				ErrInvalidValue, fieldType.Name, field.Kind().String(), name))
			continue
		}

		val, err := lookup(name, fieldType.Tag, lookupEnv)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		field.SetString(val)
	}

	return errors.Join(errs...)
}

// lookup resolves an environment variable, falling back to the envDefault tag.
func lookup(name string, tag reflect.StructTag, lookupEnv func(string) (string, bool)) (string, error) {
	if val, ok := lookupEnv(name); ok {
		return val, nil
	}
	if val, ok := tag.Lookup("envDefault"); ok {
		return val, nil
	}
	return "", fmt.Errorf("%w: environment variable not set: %s", ErrEnvNotSet, name)
}
