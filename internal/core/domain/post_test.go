package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostMetadata(t *testing.T) {
	meta := NewPostMetadata()

	require.NotNil(t, meta.Tags)
	require.NotNil(t, meta.Categories)
	assert.Empty(t, meta.Tags)
	assert.Empty(t, meta.Categories)
	assert.Empty(t, meta.Extra)
}

func TestPostMetadata_Set_PreservesOrder(t *testing.T) {
	meta := NewPostMetadata()
	meta.Set("draft", true)
	meta.Set("layout", "post")
	meta.Set("aliases", []string{"/old-url"})

	require.Len(t, meta.Extra, 3)
	assert.Equal(t, "draft", meta.Extra[0].Key)
	assert.Equal(t, "layout", meta.Extra[1].Key)
	assert.Equal(t, "aliases", meta.Extra[2].Key)
}

func TestPostMetadata_Set_UpdatesInPlace(t *testing.T) {
	meta := NewPostMetadata()
	meta.Set("draft", true)
	meta.Set("layout", "post")
	meta.Set("draft", false)

	require.Len(t, meta.Extra, 2)
	assert.Equal(t, "draft", meta.Extra[0].Key)
	assert.Equal(t, false, meta.Extra[0].Value)
}

func TestPostMetadata_Lookup(t *testing.T) {
	meta := NewPostMetadata()
	meta.Set("draft", true)

	val, ok := meta.Lookup("draft")
	require.True(t, ok)
	assert.Equal(t, true, val)

	_, ok = meta.Lookup("missing")
	assert.False(t, ok)
}
