package config

import (
	"fmt"
	"strings"
)

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks every field and returns nil or a *ValidationErrors
// holding all problems found.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	validateServer(&c.Server, errs)
	validateLog(&c.Log, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateServer(s *ServerConfig, errs *ValidationErrors) {
	if s.Port < 0 || s.Port > 65535 {
		errs.Add("server.port", fmt.Sprintf("must be between 0 and 65535, got %d", s.Port))
	}
	if s.ReadHeaderTimeout < 0 {
		errs.Add("server.readHeaderTimeout", "must not be negative")
	}
	if s.IdleTimeout < 0 {
		errs.Add("server.idleTimeout", "must not be negative")
	}
}

func validateLog(l *LogConfig, errs *ValidationErrors) {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs.Add("log.level", fmt.Sprintf("unknown level %q (want debug, info, warn or error)", l.Level))
	}

	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		errs.Add("log.format", fmt.Sprintf("unknown format %q (want text or json)", l.Format))
	}
}
