package page

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/adampresley/photogallery/pkg/assetpath"
	"github.com/adampresley/photogallery/pkg/components"
	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/alitto/pond/v2"
)

type BootstrapperConfig struct {
	Loader services.DataLoaderServicer
	Now    func() time.Time
	Pool   pond.Pool
}

/*
Bootstrapper fills a page shell from the catalog and selections
documents. A missing or broken document only means less content.
*/
type Bootstrapper struct {
	loader services.DataLoaderServicer
	now    func() time.Time
	pool   pond.Pool
}

func NewBootstrapper(config BootstrapperConfig) Bootstrapper {
	now := config.Now

	if now == nil {
		now = time.Now
	}

	return Bootstrapper{
		loader: config.Loader,
		now:    now,
		pool:   config.Pool,
	}
}

func (b Bootstrapper) Run(ctx context.Context, p *Page, query url.Values, scheduler components.Scheduler) {
	caps := p.Capabilities

	if caps.Year {
		dom.SetText(p.Doc.GetElementByID(YearID), strconv.Itoa(b.now().Year()))
	}

	albumsDocument, selectionsDocument := b.loadDocuments(ctx)

	catalog := services.Normalize(albumsDocument)
	selections := services.NormalizeSelections(selectionsDocument)

	if caps.Carousel {
		p.Carousel = components.MountCarousel(p.Doc, FrontPageImages(catalog, selections), scheduler)
	}

	if caps.Albums {
		components.BuildAlbumsGrid(p.Doc, ResolveAlbums(catalog), catalog)
	}

	if caps.SelectedWork {
		files, _ := selections.Images(models.SelectionSelectedWork)
		images := assetpath.Images(assetpath.CategorySelections, models.SelectionSelectedWork, files)
		components.BuildSelectedWork(p.Doc, images, p.Lightbox)
	}

	if caps.Gallery {
		name, entry := SelectedAlbum(catalog, query)
		images := assetpath.Images(assetpath.CategoryAlbums, name, entry.Images)
		components.BuildGallery(p.Doc, images, entry.Title, p.Lightbox)
	}
}

/*
loadDocuments fetches both documents at the same time. Each one falls
back to an empty object on its own.
*/
func (b Bootstrapper) loadDocuments(ctx context.Context) (models.RawObject, models.RawObject) {
	albums := models.RawObject{}
	selections := models.RawObject{}

	loadAlbums := func() {
		albums = b.load(ctx, services.AlbumsDocument)
	}

	loadSelections := func() {
		selections = b.load(ctx, services.SelectionsDocument)
	}

	if b.pool == nil {
		loadAlbums()
		loadSelections()
		return albums, selections
	}

	albumsTask := b.pool.Submit(loadAlbums)
	selectionsTask := b.pool.Submit(loadSelections)

	if err := albumsTask.Wait(); err != nil {
		slog.Warn("catalog load did not run", "error", err)
	}

	if err := selectionsTask.Wait(); err != nil {
		slog.Warn("selections load did not run", "error", err)
	}

	return albums, selections
}

func (b Bootstrapper) load(ctx context.Context, path string) models.RawObject {
	result, err := b.loader.Load(ctx, path)

	if err != nil {
		slog.Warn("data document unavailable. rendering without it", "path", path, "error", err)
		return models.RawObject{}
	}

	return result
}

/*
FrontPageImages picks the carousel images: the front-page selection when
it declares images, else the front-page album, else nothing.
*/
func FrontPageImages(catalog *models.AlbumCatalog, selections models.SelectionsCatalog) []string {
	if files, ok := selections.Images(models.SelectionFrontPage); ok {
		return assetpath.Images(assetpath.CategorySelections, models.SelectionFrontPage, files)
	}

	if entry, ok := catalog.Get(models.AlbumFrontPage); ok {
		return assetpath.Images(assetpath.CategoryAlbums, models.AlbumFrontPage, entry.Images)
	}

	return []string{}
}

// ResolveAlbums lists every catalog album with resolved image paths, in catalog order.
func ResolveAlbums(catalog *models.AlbumCatalog) []components.ResolvedAlbum {
	result := []components.ResolvedAlbum{}

	for _, name := range catalog.Names() {
		entry, _ := catalog.Get(name)

		result = append(result, components.ResolvedAlbum{
			Name:   name,
			Images: assetpath.Images(assetpath.CategoryAlbums, name, entry.Images),
		})
	}

	return result
}

/*
SelectedAlbum resolves the album named by the query, defaulting to the
front-page album. Unknown albums are empty with a derived title.
*/
func SelectedAlbum(catalog *models.AlbumCatalog, query url.Values) (string, models.AlbumEntry) {
	name := query.Get(components.AlbumQueryParam)

	if name == "" {
		name = models.AlbumFrontPage
	}

	if entry, ok := catalog.Get(name); ok {
		return name, entry
	}

	return name, models.AlbumEntry{
		Title:  models.DeriveTitle(name),
		Images: []string{},
	}
}
