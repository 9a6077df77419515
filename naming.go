package jsontools

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// NamingConvention identifies a supported key-casing style.
type NamingConvention string

// Supported naming conventions.
const (
	CamelCase      NamingConvention = "CamelCase"
	LowerCamelCase NamingConvention = "lowerCamelCase"
	SnakeCase      NamingConvention = "snake_case"
	DisplayName    NamingConvention = "Display Name"
)

func (nc NamingConvention) valid() bool {
	switch nc {
	case CamelCase, LowerCamelCase, SnakeCase, DisplayName:
		return true
	}
	return false
}

// ConvertName converts a name between naming conventions, normalizing to
// snake_case as the common intermediate form:
//
//	ConvertName("hello_world", SnakeCase, CamelCase)      // "HelloWorld"
//	ConvertName("hello_world", SnakeCase, LowerCamelCase) // "helloWorld"
//	ConvertName("hello_world", SnakeCase, DisplayName)    // "Hello World"
//	ConvertName("HelloWorld", CamelCase, SnakeCase)       // "hello_world"
//
// An unrecognized convention fails with ErrUnsupportedConvention.
func ConvertName(name string, from, to NamingConvention) (string, error) {
	var snake string
	switch from {
	case CamelCase, LowerCamelCase:
		snake = strcase.ToSnake(strings.TrimSpace(name))
	case DisplayName:
		snake = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	case SnakeCase:
		snake = strings.ToLower(strings.TrimSpace(name))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConvention, from)
	}

	switch to {
	case SnakeCase:
		return snake, nil
	case CamelCase:
		return strcase.ToCamel(snake), nil
	case LowerCamelCase:
		return strcase.ToLowerCamel(snake), nil
	case DisplayName:
		words := strings.Split(snake, "_")
		for i, word := range words {
			if word != "" {
				words[i] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		return strings.Join(words, " "), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConvention, to)
	}
}
