package favigen

import "fmt"

// RenderError is returned when the vector source is missing, malformed
// or cannot be rasterized.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not render the vector source: %v", e.Err)
	}
	return fmt.Sprintf("could not render the vector source %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError is returned when a raster output cannot be persisted to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write the output file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// PackError is returned when the multi-resolution icon container cannot be built.
type PackError struct {
	Path string
	Err  error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("could not pack the icon container %s: %v", e.Path, e.Err)
}

func (e *PackError) Unwrap() error { return e.Err }
