package config

import (
	"fmt"
	"os"
	"strconv"
)

// Development turns on debug logging. Any value but "0" counts as set.
func Development() bool {
	return lookupFlag("DEVELOPMENT")
}

func lookupFlag(key string) bool {
	value, ok := os.LookupEnv(key)
	return ok && value != "0"
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	return v, nil
}
