// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt assembles the chat messages that ask a model for a
// markdown project description of a research paper.
package prompt

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/pdiddy/paper-md/internal/pdf"
	"github.com/pdiddy/paper-md/pkg/types"
)

//go:embed templates/*.md
var templatesFS embed.FS

var (
	systemTmpl = template.Must(template.ParseFS(templatesFS, "templates/system.md"))
	userTmpl   = template.Must(template.ParseFS(templatesFS, "templates/user.md"))
)

// templateData is the input shared by the system and user templates.
type templateData struct {
	Text      string
	HasImages bool
}

// Build returns the system and user messages for one paper. text is the
// page-marked extracted text. When images (base64 PNG pages) are given the
// user message becomes multipart: the rendered text followed by one image
// part per page, in order.
func Build(text string, images []string) ([]types.Message, error) {
	data := templateData{Text: text, HasImages: len(images) > 0}

	system, err := render(systemTmpl, data)
	if err != nil {
		return nil, err
	}
	user, err := render(userTmpl, data)
	if err != nil {
		return nil, err
	}

	messages := []types.Message{
		{Role: types.RoleSystem, Text: system},
	}

	if len(images) == 0 {
		return append(messages, types.Message{Role: types.RoleUser, Text: user}), nil
	}

	parts := make([]types.ContentPart, 0, len(images)+1)
	parts = append(parts, types.TextPart(user))
	for _, img := range images {
		parts = append(parts, types.ImagePart(pdf.ImageMIMEType, img))
	}
	return append(messages, types.Message{Role: types.RoleUser, Parts: parts}), nil
}

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
