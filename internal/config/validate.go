package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// maxCount bounds the push/pop counts accepted by the driver.
const maxCount = 1 << 20

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error"}

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("invalid level %q, available: %s", v, strings.Join(availableLogLevels, ", "))
	}

	return nil
}

func checkCount(v int) error {
	if v < 0 || maxCount < v {
		return fmt.Errorf("out of range[%d-%d]", 0, maxCount)
	}

	return nil
}

func checkNothing[T any](T) error {
	return nil
}

// validateLogLevel is the cli.StringFlag validator for log levels.
func validateLogLevel(v string) error {
	if err := checkLogLevel(v); err != nil {
		return err
	}

	_, err := zerolog.ParseLevel(strings.ToLower(v))
	return err
}

func validateCount(v int) error {
	return checkCount(v)
}
