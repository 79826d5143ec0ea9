package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/ptr"
)

// MustParseLogLevel parses a level string accepted by checkLogLevel.
// It panics on anything else.
func MustParseLogLevel(s string) zerolog.Level {
	if err := checkLogLevel(s); err != nil {
		panic(err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(err)
	}

	return level
}

// toInt converts the integer types a TOML decoder produces.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func parseBoolFn() func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("expected boolean, got %T", v)
		}

		return b, nil
	}
}

func parseStringFn(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		return s, check(s)
	}
}

func parseIntFn(check func(int) error) func(any) (int, error) {
	return func(v any) (int, error) {
		n, err := toInt(v)
		if err != nil {
			return 0, err
		}

		return n, check(n)
	}
}

// findFrom looks key up in data and parses it. A missing key yields nil.
// Once *err is set, later lookups are skipped so the first error wins.
func findFrom[T any](
	data map[string]any,
	key string,
	parser func(any) (T, error),
	err *error,
) *T {
	if err != nil && *err != nil {
		return nil
	}

	anyVal, ok := data[key]
	if !ok {
		return nil
	}

	val, parseErr := parser(anyVal)
	if parseErr != nil {
		*err = fmt.Errorf("field %q: %w", key, parseErr)
		return nil
	}

	return ptr.FromValue(val)
}

func findSliceFrom[T any](
	data map[string]any,
	key string,
	elementParser func(any) (T, error),
	err *error,
) []T {
	if err != nil && *err != nil {
		return nil
	}

	val, ok := data[key]
	if !ok {
		return nil
	}

	rawList, ok := val.([]any)
	if !ok {
		if typedList, ok := val.([]T); ok {
			return typedList
		}
		*err = fmt.Errorf("field %q: expected list, got %T", key, val)
		return nil
	}

	result := make([]T, 0, len(rawList))
	for i, rawItem := range rawList {
		parsedItem, parseErr := elementParser(rawItem)
		if parseErr != nil {
			*err = fmt.Errorf("field %q[%d]: %w", key, i, parseErr)
			return nil
		}
		result = append(result, parsedItem)
	}

	return result
}

func findTableFrom[T any, PT interface {
	*T
	toml.Unmarshaler
}](m map[string]any, key string, errPtr *error) *T {
	if errPtr != nil && *errPtr != nil {
		return nil
	}

	val, ok := m[key]
	if !ok {
		return nil
	}

	var item T
	if err := PT(&item).UnmarshalTOML(val); err != nil {
		*errPtr = fmt.Errorf("failed to decode '%s': %w", key, err)
		return nil
	}

	return &item
}

func isOk[T any](p *T, err error) bool {
	return p != nil && err == nil
}
