package services

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
)

/*
Fetcher retrieves a document relative to the site root. A non-nil
error means the document is not available.
*/
type Fetcher interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

type FileFetcher struct {
	fsys fs.FS
}

func NewFileFetcher(fsys fs.FS) FileFetcher {
	return FileFetcher{
		fsys: fsys,
	}
}

func (f FileFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.fsys.Open(strings.TrimPrefix(name, "/"))
}

type HTTPFetcherConfig struct {
	BaseURL string
	Client  *http.Client
}

type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(config HTTPFetcherConfig) HTTPFetcher {
	client := config.Client

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return HTTPFetcher{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client:  client,
	}
}

func (f HTTPFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	u := f.baseURL + "/" + strings.TrimPrefix(name, "/")

	if request, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil); err != nil {
		return nil, fmt.Errorf("error building request for '%s': %w", u, err)
	}

	if response, err = f.client.Do(request); err != nil {
		return nil, fmt.Errorf("error requesting '%s': %w", u, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_ = response.Body.Close()
		return nil, fmt.Errorf("error requesting '%s', status: %s", u, response.Status)
	}

	return response.Body, nil
}

type S3FetcherConfig struct {
	Bucket   string
	Prefix   string
	S3Client s3.S3Client
}

type S3Fetcher struct {
	bucket   string
	prefix   string
	s3Client s3.S3Client
}

func NewS3Fetcher(config S3FetcherConfig) S3Fetcher {
	return S3Fetcher{
		bucket:   config.Bucket,
		prefix:   config.Prefix,
		s3Client: config.S3Client,
	}
}

func (f S3Fetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	var (
		err    error
		object s3.GetObjectResponse
	)

	key := f.Key(name)

	object, err = f.s3Client.Get(
		f.bucket,
		key,
		getoptions.WithContext(ctx),
	)

	if err != nil {
		return nil, fmt.Errorf("error getting object '%s' from bucket '%s': %w", key, f.bucket, err)
	}

	return object.Body, nil
}

// Key maps a site relative name to its object key under the configured prefix.
func (f S3Fetcher) Key(name string) string {
	return path.Join(f.prefix, strings.TrimPrefix(name, "/"))
}
