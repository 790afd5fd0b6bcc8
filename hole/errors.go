package hole

import (
	"errors"
	"strings"
)

var (
	// ErrExclusive is returned when parameters that exclude each other are both given.
	ErrExclusive = errors.New("mutually exclusive parameters")
	// ErrRequired is returned when a required parameter is missing.
	ErrRequired = errors.New("missing required parameter")
	// ErrAlignment is returned for an alignment other than Top, Center or Bottom.
	ErrAlignment = errors.New("invalid alignment")
	// ErrGeometry is returned when the parameters describe a solid that cannot exist.
	ErrGeometry = errors.New("impossible geometry")
)

// ConfigError is a construction error naming the offending parameters.
type ConfigError struct {
	Kind   error
	Fields []string
}

// Error lists the offending parameters after the kind of error.
func (e *ConfigError) Error() string {
	return e.Kind.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap returns Kind so errors.Is matches the sentinel errors.
func (e *ConfigError) Unwrap() error { return e.Kind }
