package page

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const landingShell = `<!DOCTYPE html><html><head></head><body><div id="site">
<div id="carousel"><div id="carousel-track"></div><button id="prev">&lt;</button><button id="next">&gt;</button></div>
<section id="selected-work"></section>
<div id="albums"></div>
<div id="lightbox" hidden><button id="lb-close">x</button><button id="lb-prev">&lt;</button><img id="lb-img" alt=""><button id="lb-next">&gt;</button></div>
<footer>&copy; <span id="year"></span></footer>
</div></body></html>`

const albumShell = `<!DOCTYPE html><html><head></head><body><div id="site">
<h1 id="album-title"></h1>
<div id="gallery"></div>
<div id="lightbox" hidden><button id="lb-close">x</button><button id="lb-prev">&lt;</button><img id="lb-img" alt=""><button id="lb-next">&gt;</button></div>
</div></body></html>`

const albumsJSON = `{
	"sunset-trip": {"title": "Sunset", "images": ["1.jpg"]},
	"rainy-day": ["2.jpg", "3.jpg"],
	"front-page": ["fp1.jpg", "fp2.jpg"]
}`

const selectionsJSON = `{
	"front-page": {"images": ["s1.jpg", "s2.jpg", "s3.jpg"]},
	"selected_work": {"images": ["w1.jpg", "w2.jpg"]}
}`

var fixedNow = func() time.Time {
	return time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
}

func newPage(t *testing.T, shell string) *Page {
	t.Helper()

	doc, err := dom.Parse(strings.NewReader(shell))
	require.NoError(t, err)
	return NewPage(doc)
}

func newLoader(files map[string]string) services.DataLoader {
	fsys := fstest.MapFS{}

	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}

	return services.NewDataLoader(services.DataLoaderConfig{
		Fetcher: services.NewFileFetcher(fsys),
	})
}

type manualScheduler struct {
	fns []func()
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) {
	s.fns = append(s.fns, fn)
}

func (s *manualScheduler) tick() {
	for _, fn := range s.fns {
		fn()
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))

	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	return buf
}

func attr(n *html.Node, key string) string {
	value, _ := dom.GetAttr(n, key)
	return value
}

func srcs(nodes []*html.Node) []string {
	result := []string{}

	for _, n := range nodes {
		result = append(result, attr(n, "src"))
	}

	return result
}
