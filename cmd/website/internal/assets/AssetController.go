package assets

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
	"github.com/adampresley/photogallery/pkg/assetpath"
)

type AssetHandlers interface {
	ServeAsset(w http.ResponseWriter, r *http.Request)
}

type AssetControllerConfig struct {
	Bucket   string
	FromS3   bool
	Prefix   string
	S3Client s3.S3Client
	SiteFS   fs.FS
}

/*
AssetController serves files below assets/ either from the site
directory or from the S3 bucket holding the site.
*/
type AssetController struct {
	bucket   string
	fromS3   bool
	prefix   string
	s3Client s3.S3Client
	siteFS   fs.FS
}

func NewAssetController(config AssetControllerConfig) AssetController {
	return AssetController{
		bucket:   config.Bucket,
		fromS3:   config.FromS3,
		prefix:   config.Prefix,
		s3Client: config.S3Client,
		siteFS:   config.SiteFS,
	}
}

/*
GET /assets/{path...}
*/
func (c AssetController) ServeAsset(w http.ResponseWriter, r *http.Request) {
	name := assetpath.Resolve("assets", httphelpers.GetFromRequest[string](r, "path"))

	if !fs.ValidPath(name) {
		httphelpers.WriteText(w, http.StatusNotFound, "asset not found")
		return
	}

	if c.fromS3 {
		c.serveFromS3(w, r, name)
		return
	}

	http.ServeFileFS(w, r, c.siteFS, name)
}

func (c AssetController) serveFromS3(w http.ResponseWriter, r *http.Request, name string) {
	var (
		err    error
		object s3.GetObjectResponse
	)

	key := path.Join(c.prefix, name)

	object, err = c.s3Client.Get(
		c.bucket,
		key,
		getoptions.WithContext(r.Context()),
		getoptions.WithTimeout(time.Minute*5),
	)

	if err != nil {
		slog.Error("error getting asset object from S3", "error", err, "bucket", c.bucket, "key", key)
		httphelpers.WriteText(w, http.StatusNotFound, "asset not found")
		return
	}

	defer object.Body.Close()

	w.Header().Set("Content-Type", object.ContentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", object.Size))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	_, _ = io.Copy(w, object.Body)
}
