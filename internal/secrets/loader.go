// Package secrets resolves credential values, such as the Gemini API key and
// the database connection string, from configuration or from files.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a credential comes from. When File is set it takes
// precedence over Value.
type Source struct {
	// Name gives error messages context about which credential failed.
	Name string
	// Value is an inline value from configuration or flags.
	Value string
	// File points to a file holding the value.
	File string
}

// Load returns the resolved credential, trimmed of surrounding whitespace.
// An error is returned when neither File nor Value yield a usable value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "credential"
	}

	value := src.Value
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}

	if file != "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}
	return "", fmt.Errorf("%s is not configured", name)
}
