package uploader

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(t *testing.T) (*Local, string) {
	t.Helper()
	dir := t.TempDir()
	return NewLocal(dir, "/public/uploads"), dir
}

func TestResolveImage_EmptyInputStaysEmpty(t *testing.T) {
	u, _ := newTestUploader(t)
	url, err := ResolveImage(u, "")
	require.NoError(t, err)
	assert.Empty(t, url)

	url, err = ResolveImage(u, "   ")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestResolveImage_URLsPassThrough(t *testing.T) {
	u, dir := newTestUploader(t)
	for _, input := range []string{
		"https://cdn.example.com/logo.png",
		"http://cdn.example.com/logo.png",
		"/public/uploads/existing.png",
	} {
		url, err := ResolveImage(u, input)
		require.NoError(t, err)
		assert.Equal(t, input, url)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "pass-through inputs must not write files")
}

func TestResolveImage_DataURIStoresFile(t *testing.T) {
	u, dir := newTestUploader(t)
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	url, err := ResolveImage(u, "data:image/png;base64,"+payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/public/uploads/"), "got %q", url)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(stored))
}

func TestResolveImage_BareBase64StoresFile(t *testing.T) {
	u, dir := newTestUploader(t)
	payload := base64.StdEncoding.EncodeToString([]byte("more fake bytes"))

	url, err := ResolveImage(u, payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/public/uploads/"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestResolveImage_MalformedInputs(t *testing.T) {
	u, _ := newTestUploader(t)

	_, err := ResolveImage(u, "data:image/png,not-base64-encoded")
	assert.Error(t, err)

	_, err = ResolveImage(u, "!!not base64!!")
	assert.Error(t, err)
}

func TestStore_RejectsEmptyPayload(t *testing.T) {
	u, _ := newTestUploader(t)
	_, err := u.Store(".png", nil)
	assert.Error(t, err)
}

func TestStore_UniqueNamesPerUpload(t *testing.T) {
	u, dir := newTestUploader(t)
	first, err := u.Store(".png", []byte("a"))
	require.NoError(t, err)
	second, err := u.Store(".png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
