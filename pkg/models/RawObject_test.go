package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawObjectKeepsDocumentOrder(t *testing.T) {
	got := RawObject{}
	require.NoError(t, json.Unmarshal([]byte(`{"zebra": 1, "apple": "x", "mango": [1, 2]}`), &got))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, got.Names())
	assert.Equal(t, 3, got.Len())

	value, ok := got.Get("apple")
	require.True(t, ok)
	assert.JSONEq(t, `"x"`, string(value))

	value, ok = got.Get("mango")
	require.True(t, ok)
	assert.JSONEq(t, `[1, 2]`, string(value))
}

func TestRawObjectRepeatedNames(t *testing.T) {
	got := RawObject{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &got))

	members := got.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].Name)
	assert.JSONEq(t, `3`, string(members[0].Value))
	assert.Equal(t, "b", members[1].Name)
}

func TestRawObjectRejectsNonObjects(t *testing.T) {
	for _, document := range []string{`[1, 2]`, `"text"`, `null`, `5`} {
		got := RawObject{}
		err := json.Unmarshal([]byte(document), &got)

		assert.ErrorIs(t, err, ErrNotObject, document)
		assert.Equal(t, 0, got.Len(), document)
	}
}

func TestRawObjectZeroValue(t *testing.T) {
	var got RawObject

	assert.Empty(t, got.Members())
	assert.Empty(t, got.Names())

	_, ok := got.Get("missing")
	assert.False(t, ok)
}

func TestAlbumCatalogOrder(t *testing.T) {
	catalog := NewAlbumCatalog()
	catalog.Set("b", AlbumEntry{Title: "b"})
	catalog.Set("a", AlbumEntry{Title: "a"})
	catalog.Set("b", AlbumEntry{Title: "replaced"})

	assert.Equal(t, []string{"b", "a"}, catalog.Names())
	assert.Equal(t, 2, catalog.Len())

	entry, ok := catalog.Get("b")
	require.True(t, ok)
	assert.Equal(t, "replaced", entry.Title)

	var missing *AlbumCatalog
	assert.Empty(t, missing.Names())
	assert.Equal(t, 0, missing.Len())

	zero := &AlbumCatalog{}
	zero.Set("late", AlbumEntry{})
	assert.Equal(t, []string{"late"}, zero.Names())
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "rainy day out", DeriveTitle("rainy-day-out"))
	assert.Equal(t, "selected_work", DeriveTitle("selected_work"))
}
