// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Mode selects how a markdown description is generated.
type Mode int

const (
	// ModeVision sends page images alongside the extracted text.
	ModeVision Mode = iota
	// ModeText sends the extracted text only.
	ModeText
)

// Modes lists every generation mode in fallback order.
var Modes = []Mode{ModeVision, ModeText}

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeVision:
		return "vision"
	case ModeText:
		return "text"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Label is the human-readable prefix used in outcome lines.
func (m Mode) Label() string {
	switch m {
	case ModeVision:
		return "Vision-based"
	case ModeText:
		return "Text-based"
	}
	return m.String()
}

// Suffix is appended to the document name to form the output file name.
func (m Mode) Suffix() string {
	switch m {
	case ModeVision:
		return "_vision_desc.md"
	case ModeText:
		return "_text_desc.md"
	}
	return "_" + m.String() + "_desc.md"
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == ModeVision || m == ModeText
}
