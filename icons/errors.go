package icons

import "fmt"

// SourceNotFoundError reports that the source image path does not exist.
// It is checked before any decode attempt, so it implies no side effects.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source image not found: %s", e.Path)
}

// LoadError reports a source image that exists but could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load source image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports a failed directory creation or file write for a single
// output entry. The run aborts at the first WriteError; entries written
// before it remain on disk.
type WriteError struct {
	Label string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Label, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
