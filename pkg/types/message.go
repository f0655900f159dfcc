// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Role identifies the author of a prompt message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// PartType tags the variant held by a ContentPart.
type PartType string

const (
	PartText  PartType = "text"
	PartImage PartType = "image"
)

// ContentPart is one segment of a multipart message: either text or a
// base64-encoded image.
type ContentPart struct {
	Type PartType `json:"type" yaml:"type"`

	// Text is set for PartText.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Data is the base64 payload for PartImage.
	Data string `json:"data,omitempty" yaml:"data,omitempty"`

	// MIMEType is the media type of Data (e.g. "image/png").
	MIMEType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
}

// TextPart returns a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: PartText, Text: text}
}

// ImagePart returns an image content part holding base64 data.
func ImagePart(mimeType, data string) ContentPart {
	return ContentPart{Type: PartImage, Data: data, MIMEType: mimeType}
}

// DataURI renders an image part as a data URI.
func (p ContentPart) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + p.Data
}

// Message is a single chat message. Content is either Text or, when Parts
// is non-empty, the ordered Parts.
type Message struct {
	Role  Role          `json:"role" yaml:"role"`
	Text  string        `json:"text,omitempty" yaml:"text,omitempty"`
	Parts []ContentPart `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// IsMultipart reports whether the message carries content parts.
func (m Message) IsMultipart() bool {
	return len(m.Parts) > 0
}

// HasImages reports whether any part of the message is an image.
func (m Message) HasImages() bool {
	for _, p := range m.Parts {
		if p.Type == PartImage {
			return true
		}
	}
	return false
}
