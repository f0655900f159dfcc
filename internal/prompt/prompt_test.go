// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-md/pkg/types"
)

const sampleText = "--- Page 1 ---\nDeep residual learning\n"

func TestBuild_TextOnly(t *testing.T) {
	msgs, err := Build(sampleText, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, types.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Text, "**ROLE**")
	assert.NotContains(t, msgs[0].Text, "list of images")

	user := msgs[1]
	assert.Equal(t, types.RoleUser, user.Role)
	assert.False(t, user.IsMultipart())
	assert.Contains(t, user.Text, "PDF Text\n"+sampleText)
	assert.Contains(t, user.Text, "Output markdown formatted text:")
}

func TestBuild_WithImages(t *testing.T) {
	images := []string{"cGFnZTE=", "cGFnZTI="}

	msgs, err := Build(sampleText, images)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Contains(t, msgs[0].Text, "list of images")

	user := msgs[1]
	require.True(t, user.IsMultipart())
	require.Len(t, user.Parts, 3)
	assert.True(t, user.HasImages())

	assert.Equal(t, types.PartText, user.Parts[0].Type)
	assert.Contains(t, user.Parts[0].Text, sampleText)

	for i, img := range images {
		part := user.Parts[i+1]
		assert.Equal(t, types.PartImage, part.Type)
		assert.Equal(t, "data:image/png;base64,"+img, part.DataURI())
	}
}

func TestBuild_Deterministic(t *testing.T) {
	images := []string{"aW1n"}

	first, err := Build(sampleText, images)
	require.NoError(t, err)
	second, err := Build(sampleText, images)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_EmptyImagesIsTextOnly(t *testing.T) {
	msgs, err := Build(sampleText, []string{})
	require.NoError(t, err)
	assert.False(t, msgs[1].IsMultipart())
}
