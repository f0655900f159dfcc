// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import "fmt"

// ExtractionError reports a PDF that could not be opened or read.
type ExtractionError struct {
	// Path is the PDF being processed.
	Path string
	// Op names the failed step ("open", "text", "render").
	Op string
	// Page is the 1-based page involved, or 0 when the whole file failed.
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("pdf %s %s page %d: %v", e.Op, e.Path, e.Page, e.Err)
	}
	return fmt.Sprintf("pdf %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
