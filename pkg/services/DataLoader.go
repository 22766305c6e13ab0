package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/adampresley/photogallery/pkg/models"
)

const (
	AlbumsDocument     = "data/albums.json"
	SelectionsDocument = "data/selections.json"
)

/*
LoadError reports that a data document could not be fetched or decoded.
Callers recover from it by using an empty document.
*/
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type DataLoaderServicer interface {
	Load(ctx context.Context, path string) (models.RawObject, error)
}

type DataLoaderConfig struct {
	Fetcher Fetcher
}

type DataLoader struct {
	fetcher Fetcher
}

func NewDataLoader(config DataLoaderConfig) DataLoader {
	return DataLoader{
		fetcher: config.Fetcher,
	}
}

/*
Load fetches the JSON document at path, relative to the site root, and
decodes it as an object. Every failure is returned as a *LoadError. There
is exactly one attempt per call.
*/
func (s DataLoader) Load(ctx context.Context, path string) (models.RawObject, error) {
	var (
		err  error
		body io.ReadCloser
		b    []byte
	)

	result := models.RawObject{}

	if body, err = s.fetcher.Fetch(ctx, path); err != nil {
		return result, &LoadError{Path: path, Err: err}
	}

	defer body.Close()

	if b, err = io.ReadAll(body); err != nil {
		return result, &LoadError{Path: path, Err: fmt.Errorf("error reading document: %w", err)}
	}

	if err = json.Unmarshal(b, &result); err != nil {
		return models.RawObject{}, &LoadError{Path: path, Err: fmt.Errorf("error decoding document: %w", err)}
	}

	return result, nil
}
