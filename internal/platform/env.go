package platform

import (
	"os"
	"strconv"
	"strings"
)

// EnvDefault returns the trimmed value of key, or fallback when unset or
// blank.
func EnvDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// EnvBoolDefault parses key with strconv.ParseBool. Unset and unparsable
// values yield fallback.
func EnvBoolDefault(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
