package axon

import "fmt"

// ConfigurationError reports invalid rendering parameters. It is always
// returned before any pixel processing begins; partial output is never
// produced for an invalid configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("axon: invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PaletteLoadError reports a malformed or unreadable swatch image.
// Callers typically skip the offending palette rather than abort.
type PaletteLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PaletteLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("axon: palette: %s", e.Reason)
	}
	return fmt.Sprintf("axon: palette %s: %s", e.Path, e.Reason)
}

func (e *PaletteLoadError) Unwrap() error {
	return e.Err
}
