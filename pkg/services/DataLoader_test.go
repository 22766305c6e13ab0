package services

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataLoaderFromFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"data/albums.json":     {Data: []byte(`{"b-album": ["1.jpg"], "a-album": {"images": []}}`)},
		"data/selections.json": {Data: []byte(`[1, 2]`)},
		"data/broken.json":     {Data: []byte(`{"a": `)},
	}

	loader := NewDataLoader(DataLoaderConfig{Fetcher: NewFileFetcher(fsys)})

	t.Run("object keeps member order", func(t *testing.T) {
		got, err := loader.Load(context.Background(), AlbumsDocument)
		require.NoError(t, err)
		assert.Equal(t, []string{"b-album", "a-album"}, got.Names())
	})

	t.Run("missing document", func(t *testing.T) {
		got, err := loader.Load(context.Background(), "data/missing.json")

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "data/missing.json", loadErr.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Empty(t, got)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := loader.Load(context.Background(), SelectionsDocument)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, SelectionsDocument, loadErr.Path)
	})

	t.Run("invalid json", func(t *testing.T) {
		got, err := loader.Load(context.Background(), "data/broken.json")

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Empty(t, got)
	})
}

func TestDataLoaderFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/data/albums.json" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rainy-day": ["2.jpg"]}`))
	}))
	defer server.Close()

	loader := NewDataLoader(DataLoaderConfig{
		Fetcher: NewHTTPFetcher(HTTPFetcherConfig{BaseURL: server.URL + "/site/"}),
	})

	got, err := loader.Load(context.Background(), AlbumsDocument)
	require.NoError(t, err)
	assert.Equal(t, []string{"rainy-day"}, got.Names())

	_, err = loader.Load(context.Background(), SelectionsDocument)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "404")
}

func TestFileFetcherHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileFetcher(fstest.MapFS{}).Fetch(ctx, AlbumsDocument)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3FetcherKey(t *testing.T) {
	assert.Equal(t, "site/data/albums.json", NewS3Fetcher(S3FetcherConfig{Prefix: "site"}).Key("/data/albums.json"))
	assert.Equal(t, "data/albums.json", NewS3Fetcher(S3FetcherConfig{}).Key(AlbumsDocument))
}
