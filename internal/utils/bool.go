package utils

import (
	"fmt"
	"strings"
)

// ParseBool accepts the spellings people put in .env files: 1/0, t/f,
// true/false, y/n, yes/no and on/off, case-insensitive. An empty string is
// false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "f", "false", "n", "no", "off":
		return false, nil
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
