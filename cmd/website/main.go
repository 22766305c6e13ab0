package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/photogallery/cmd/website/internal/assets"
	"github.com/adampresley/photogallery/cmd/website/internal/audit"
	"github.com/adampresley/photogallery/cmd/website/internal/configuration"
	"github.com/adampresley/photogallery/cmd/website/internal/gallery"
	"github.com/adampresley/photogallery/pkg/page"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/alitto/pond/v2"
)

var (
	Version string = "development"
	appName string = "photogallery"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	assetAuditor audit.AssetAuditor
	bootstrapper page.Bootstrapper
	dataLoader   services.DataLoaderServicer
	loadPool     pond.Pool
	sessionStore *page.SessionStore

	/* Controllers */
	assetController   assets.AssetHandlers
	galleryController gallery.GalleryHandlers
)

func main() {
	var (
		err      error
		s3Client s3.S3Client
		pagesFS  fs.FS
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("dataSource", config.DataSource),
		slog.String("assetSource", config.AssetSource),
		slog.String("siteDir", config.SiteDir),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())
	siteFS := os.DirFS(config.SiteDir)

	/*
	 * Setup services
	 */
	if config.UsesS3() {
		awsConfig := &awsconfig.Config{
			Endpoint:        config.AwsEndpointUrl,
			Region:          config.AwsRegion,
			AccessKeyID:     config.AwsAccessKeyId,
			SecretAccessKey: config.AwsSecretAccessKey,
		}

		retrier.Retry(func() error {
			if err = awsConfig.Load(); err != nil {
				slog.Error("failed to load AWS config. trying again", "error", err)
				return err
			}

			return nil
		})

		if err != nil {
			panic(err)
		}

		if s3Client, err = s3.NewClient(awsConfig); err != nil {
			panic(err)
		}
	}

	dataLoader = services.NewDataLoader(services.DataLoaderConfig{
		Fetcher: newFetcher(siteFS, s3Client),
	})

	loadPool = pond.NewPool(config.MaxLoadWorkers, pond.WithContext(shutdownCtx))

	bootstrapper = page.NewBootstrapper(page.BootstrapperConfig{
		Loader: dataLoader,
		Pool:   loadPool,
	})

	sessionStore = page.NewSessionStore(page.SessionStoreConfig{
		IdleTimeout: time.Duration(config.SessionIdleMinutes) * time.Minute,
	})

	assetAuditor = audit.NewAssetAuditorService(audit.AssetAuditorConfig{
		Lister:      newAssetLister(siteFS, s3Client),
		Loader:      dataLoader,
		MaxWorkers:  config.MaxAuditWorkers,
		ShutdownCtx: shutdownCtx,
	})

	/*
	 * Setup controllers
	 */
	if pagesFS, err = fs.Sub(appFS, "app"); err != nil {
		panic(err)
	}

	assetController = assets.NewAssetController(assets.AssetControllerConfig{
		Bucket:   config.AwsBucket,
		FromS3:   config.AssetSource == configuration.SourceS3,
		Prefix:   config.SitePrefix,
		S3Client: s3Client,
		SiteFS:   siteFS,
	})

	galleryController = gallery.NewGalleryController(gallery.GalleryControllerConfig{
		Bootstrapper: bootstrapper,
		PagesFS:      pagesFS,
		SessionStore: sessionStore,
		ShutdownCtx:  shutdownCtx,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	pageSessionMiddleware := newPageSessionMiddleware(sessionStore)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /{$}", HandlerFunc: galleryController.IndexPage},
		{Path: "GET /index.html", HandlerFunc: galleryController.IndexPage},
		{Path: "GET /album.html", HandlerFunc: galleryController.AlbumPage},
		{Path: "GET /session/{id}", HandlerFunc: galleryController.SessionPage, Middlewares: []mux.MiddlewareFunc{pageSessionMiddleware}},
		{Path: "POST /session/{id}/events", HandlerFunc: galleryController.SessionEvent, Middlewares: []mux.MiddlewareFunc{pageSessionMiddleware}},
		{Path: "GET /assets/{path...}", HandlerFunc: assetController.ServeAsset},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Start the idle page session sweeper
	 */
	sessionStore.StartCleanupRoutine(time.Minute)
	defer sessionStore.StopCleanupRoutine()

	/*
	 * Start the asset audit job
	 */
	setupAssetAuditor(shutdownCtx, time.Duration(config.AuditIntervalMinutes)*time.Minute)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	sessionStore.CloseAll()
	loadPool.StopAndWait()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func newFetcher(siteFS fs.FS, s3Client s3.S3Client) services.Fetcher {
	switch config.DataSource {
	case configuration.SourceS3:
		return services.NewS3Fetcher(services.S3FetcherConfig{
			Bucket:   config.AwsBucket,
			Prefix:   config.SitePrefix,
			S3Client: s3Client,
		})

	case configuration.SourceHTTP:
		return services.NewHTTPFetcher(services.HTTPFetcherConfig{
			BaseURL: config.DataBaseURL,
		})

	default:
		return services.NewFileFetcher(siteFS)
	}
}

func newAssetLister(siteFS fs.FS, s3Client s3.S3Client) audit.AssetLister {
	if config.AssetSource == configuration.SourceS3 {
		return audit.NewS3AssetLister(audit.S3AssetListerConfig{
			Bucket:   config.AwsBucket,
			Prefix:   config.SitePrefix,
			S3Client: s3Client,
		})
	}

	return audit.NewFileAssetLister(siteFS)
}

func setupAssetAuditor(shutdownCtx context.Context, interval time.Duration) {
	if interval <= 0 {
		slog.Info("asset audit disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		runner := func() {
			report := assetAuditor.Audit()

			if len(report.Missing) > 0 {
				slog.Warn("asset audit found missing images", "missing", len(report.Missing))
			}
		}

		runner()

		for {
			select {
			case <-shutdownCtx.Done():
				return

			case <-ticker.C:
				runner()
			}
		}
	}()
}
