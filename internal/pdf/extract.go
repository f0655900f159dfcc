// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf extracts page text and page images from PDF files using
// MuPDF through go-fitz.
package pdf

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/paper-md/pkg/types"
)

const (
	// DefaultDPI matches MuPDF's unscaled page pixmap (1 pixel per point).
	DefaultDPI = 72.0

	// ImageMIMEType is the media type of every rendered page.
	ImageMIMEType = "image/png"
)

// Extractor reads text and renders pages from PDF files. The zero value
// renders at DefaultDPI.
type Extractor struct {
	dpi float64
}

// NewExtractor creates an Extractor from the extraction settings.
func NewExtractor(cfg types.ExtractionConfig) *Extractor {
	dpi := cfg.ImageDPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Extractor{dpi: dpi}
}

// ExtractText returns the text of every page in file order, numbered from 1.
func (e *Extractor) ExtractText(path string) ([]types.PageText, error) {
	doc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([]types.PageText, 0, n)
	for i := 0; i < n; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, &ExtractionError{Path: path, Op: "text", Page: i + 1, Err: err}
		}
		pages = append(pages, types.PageText{Page: i + 1, Text: text})
	}
	return pages, nil
}

// RenderPages rasterizes every page to PNG bytes, in file order.
func (e *Extractor) RenderPages(path string) ([][]byte, error) {
	doc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	n := doc.NumPage()
	images := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImagePNG(i, e.resolution())
		if err != nil {
			return nil, &ExtractionError{Path: path, Op: "render", Page: i + 1, Err: err}
		}
		images = append(images, img)
	}
	return images, nil
}

// DumpPages renders every page into dir as page_<N>.png. Any previous
// contents of dir are removed first. It returns the number of pages written.
func (e *Extractor) DumpPages(path, dir string) (int, error) {
	images, err := e.RenderPages(path)
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	for i, img := range images {
		name := filepath.Join(dir, fmt.Sprintf("page_%d.png", i+1))
		if err := os.WriteFile(name, img, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return len(images), nil
}

func (e *Extractor) resolution() float64 {
	if e.dpi <= 0 {
		return DefaultDPI
	}
	return e.dpi
}

// EncodeBase64 encodes each image with standard padded base64.
func EncodeBase64(images [][]byte) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = base64.StdEncoding.EncodeToString(img)
	}
	return out
}

// FormatPages joins page texts into a single string, each page introduced
// by a "--- Page N ---" marker.
func FormatPages(pages []types.PageText) string {
	blocks := make([]string, len(pages))
	for i, p := range pages {
		blocks[i] = fmt.Sprintf("--- Page %d ---\n%s\n", p.Page, p.Text)
	}
	return strings.Join(blocks, "\n")
}

func open(path string) (*fitz.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ExtractionError{Path: path, Op: "open", Err: err}
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Op: "open", Err: err}
	}
	return doc, nil
}
