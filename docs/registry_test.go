package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(name string) Document {
	return Document{
		InternalName: name,
		DisplayName:  name,
		FileType:     FileTypePDF,
	}
}

func TestAddUpsertsByInternalName(t *testing.T) {
	r := NewRegistry()

	r.Add(doc("doc_a"))
	r.Add(Document{InternalName: "doc_a", DisplayName: "renamed", FileType: FileTypeTXT})

	assert.Equal(t, 1, r.Len())
	got, ok := r.Get("doc_a")
	require.True(t, ok)
	assert.Equal(t, "renamed", got.DisplayName)
	assert.Equal(t, FileTypeTXT, got.FileType)
}

func TestRemoveCascadesToActiveSet(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_a"))
	r.SetActive([]string{"doc_a"})
	require.True(t, r.IsActive("doc_a"))

	assert.True(t, r.Remove("doc_a"))

	assert.False(t, r.IsActive("doc_a"))
	assert.Empty(t, r.ActiveNames())
	assert.Equal(t, 0, r.Len())
}

func TestRemoveUnknownReturnsFalse(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Remove("ghost"))
}

func TestToggleActiveIsInvolution(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_a"))

	r.ToggleActive("doc_a")
	assert.True(t, r.IsActive("doc_a"))

	r.ToggleActive("doc_a")
	assert.False(t, r.IsActive("doc_a"))
}

func TestToggleActiveUnknownNameIsLenient(t *testing.T) {
	r := NewRegistry()

	r.ToggleActive("not_uploaded_yet")
	assert.True(t, r.IsActive("not_uploaded_yet"))

	r.ToggleActive("not_uploaded_yet")
	assert.False(t, r.IsActive("not_uploaded_yet"))
}

func TestSetActiveReplacesWholeSet(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_a"))
	r.Add(doc("doc_b"))
	r.Add(doc("doc_c"))

	r.SetActive([]string{"doc_a", "doc_b"})
	r.SetActive([]string{"doc_c", "doc_c"})

	assert.False(t, r.IsActive("doc_a"))
	assert.False(t, r.IsActive("doc_b"))
	assert.Equal(t, []string{"doc_c"}, r.ActiveNames())
}

func TestClearActive(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_a"))
	r.SetActive([]string{"doc_a"})

	r.ClearActive()
	assert.Empty(t, r.ActiveNames())
	assert.Equal(t, 1, r.Len())
}

func TestActiveNamesFollowInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_b"))
	r.Add(doc("doc_a"))
	r.Add(doc("doc_c"))
	r.SetActive([]string{"doc_c", "doc_b"})

	assert.Equal(t, []string{"doc_b", "doc_c"}, r.ActiveNames())
}

func TestDocumentsFollowInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_b"))
	r.Add(doc("doc_a"))

	snapshot := r.Documents()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "doc_b", snapshot[0].InternalName)
	assert.Equal(t, "doc_a", snapshot[1].InternalName)
}

func TestReplaceAllPrunesActiveSet(t *testing.T) {
	r := NewRegistry()
	r.Add(doc("doc_a"))
	r.Add(doc("doc_b"))
	r.SetActive([]string{"doc_a", "doc_b"})

	r.ReplaceAll([]Document{doc("doc_b"), doc("doc_c")})

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.IsActive("doc_b"))
	assert.False(t, r.IsActive("doc_a"))
	assert.Equal(t, []string{"doc_b"}, r.ActiveNames())
}
