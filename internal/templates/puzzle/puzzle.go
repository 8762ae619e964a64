// Package puzzle provides templates for puzzle scaffolding.
package puzzle

import (
	"embed"
)

//go:embed day.go.tmpl registry.go.tmpl
var puzzleTemplates embed.FS

// GetDayTemplate returns the content of the solution stub template.
func GetDayTemplate() (string, error) {
	content, err := puzzleTemplates.ReadFile("day.go.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetRegistryTemplate returns the content of the day registry template.
func GetRegistryTemplate() (string, error) {
	content, err := puzzleTemplates.ReadFile("registry.go.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
