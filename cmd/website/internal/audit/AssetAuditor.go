package audit

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/photogallery/pkg/assetpath"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/alitto/pond/v2"
)

type AssetAuditor interface {
	Audit() Report
}

/*
Report is the outcome of one audit. Missing holds resolved asset paths
that the catalog or selections name but the asset store does not have.
*/
type Report struct {
	Checked int
	Missing []string
}

type AssetAuditorConfig struct {
	Lister      AssetLister
	Loader      services.DataLoaderServicer
	MaxWorkers  int
	ShutdownCtx context.Context
}

type AssetAuditorService struct {
	lister      AssetLister
	loader      services.DataLoaderServicer
	maxWorkers  int
	shutdownCtx context.Context
}

type auditGroup struct {
	category string
	name     string
	files    []string
}

func NewAssetAuditorService(config AssetAuditorConfig) AssetAuditorService {
	maxWorkers := config.MaxWorkers

	if maxWorkers < 1 {
		maxWorkers = 1
	}

	shutdownCtx := config.ShutdownCtx

	if shutdownCtx == nil {
		shutdownCtx = context.Background()
	}

	return AssetAuditorService{
		lister:      config.Lister,
		loader:      config.Loader,
		maxWorkers:  maxWorkers,
		shutdownCtx: shutdownCtx,
	}
}

/*
Audit loads both data documents and checks every image they reference
against the asset store, one directory listing per album or selection.
*/
func (a AssetAuditorService) Audit() Report {
	var (
		mu     sync.Mutex
		report = Report{Missing: []string{}}
	)

	slog.Info("starting asset audit...")

	groups := a.collectGroups()
	pool := pond.NewPool(a.maxWorkers, pond.WithContext(a.shutdownCtx))

	for _, group := range groups {
		pool.Submit(func() {
			missing, ok := a.auditGroup(group)

			if !ok {
				return
			}

			mu.Lock()
			defer mu.Unlock()

			report.Checked += len(group.files)
			report.Missing = append(report.Missing, missing...)
		})
	}

	waitForWorkers(pool.Stop())

	sort.Strings(report.Missing)
	slog.Info("asset audit finished", "checked", report.Checked, "missing", len(report.Missing))

	return report
}

type waiter interface {
	Wait() error
}

func waitForWorkers(stopped waiter) {
	if err := stopped.Wait(); err != nil {
		slog.Error("error waiting for asset audit workers", "error", err)
	}
}

func (a AssetAuditorService) collectGroups() []auditGroup {
	result := []auditGroup{}

	catalog := services.Normalize(a.load(services.AlbumsDocument))

	for _, name := range catalog.Names() {
		entry, _ := catalog.Get(name)
		result = append(result, auditGroup{category: assetpath.CategoryAlbums, name: name, files: entry.Images})
	}

	selections := services.NormalizeSelections(a.load(services.SelectionsDocument))
	keys := make([]string, 0, len(selections))

	for key := range selections {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if images, ok := selections.Images(key); ok {
			result = append(result, auditGroup{category: assetpath.CategorySelections, name: key, files: images})
		}
	}

	return result
}

func (a AssetAuditorService) load(document string) models.RawObject {
	result, err := a.loader.Load(a.shutdownCtx, document)

	if err != nil {
		slog.Warn("data document unavailable for audit", "document", document, "error", err)
		return models.RawObject{}
	}

	return result
}

func (a AssetAuditorService) auditGroup(group auditGroup) ([]string, bool) {
	dir := assetpath.Resolve("assets", "images", group.category, group.name)
	stored, err := a.lister.ListImages(dir)

	if err != nil {
		slog.Error("error listing asset directory", "dir", dir, "error", err)
		return nil, false
	}

	missing := []string{}

	for _, file := range group.files {
		if slices.IsInSlice(file, stored) {
			continue
		}

		imagePath := assetpath.Image(group.category, group.name, file)
		slog.Warn("catalog image missing from asset store", "path", imagePath)
		missing = append(missing, imagePath)
	}

	return missing, true
}
