// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// Document is a single source PDF found in the input directory.
type Document struct {
	// Path is the filesystem path to the PDF.
	Path string `json:"path" yaml:"path"`

	// Name is the file name without directory or ".pdf" extension
	// (e.g. "attention-is-all-you-need").
	Name string `json:"name" yaml:"name"`
}

// NewDocument builds a Document from a PDF path.
func NewDocument(path string) Document {
	return Document{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
}

// FileName returns the base file name of the PDF, extension included.
func (d Document) FileName() string {
	return filepath.Base(d.Path)
}

// PageText is the text extracted from one PDF page. Page is 1-based.
type PageText struct {
	Page int    `json:"page" yaml:"page"`
	Text string `json:"text" yaml:"text"`
}
