package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".svg"}

/*
AssetLister returns the base names of the image files stored directly
in dir. A directory that does not exist lists as empty.
*/
type AssetLister interface {
	ListImages(dir string) ([]string, error)
}

func IsImage(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return slices.IsInSlice(ext, ImageExtensions)
}

type FileAssetLister struct {
	fsys fs.FS
}

func NewFileAssetLister(fsys fs.FS) FileAssetLister {
	return FileAssetLister{
		fsys: fsys,
	}
}

func (l FileAssetLister) ListImages(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)

	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error reading asset directory %s: %w", dir, err)
	}

	result := []string{}

	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}

		result = append(result, entry.Name())
	}

	return result, nil
}

type S3AssetListerConfig struct {
	Bucket   string
	Prefix   string
	S3Client s3.S3Client
}

type S3AssetLister struct {
	bucket   string
	prefix   string
	s3Client s3.S3Client
}

func NewS3AssetLister(config S3AssetListerConfig) S3AssetLister {
	return S3AssetLister{
		bucket:   config.Bucket,
		prefix:   config.Prefix,
		s3Client: config.S3Client,
	}
}

func (l S3AssetLister) ListImages(dir string) ([]string, error) {
	var (
		err      error
		response s3.ListResponse
	)

	key := path.Join(l.prefix, dir) + "/"

	response, err = l.s3Client.List(
		l.bucket,
		key,
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			return IsImage(aws.ToString(obj.Key))
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing asset objects under %s: %w", key, err)
	}

	result := slices.Map(response.Objects, func(obj s3.Object, index int) string {
		return path.Base(obj.Key)
	})

	return result, nil
}
