package components

import (
	"strings"
	"testing"
	"time"

	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const fullShell = `<!DOCTYPE html><html><head></head><body>
<div id="carousel"><div id="carousel-track"></div><button id="prev">&lt;</button><button id="next">&gt;</button></div>
<section id="selected-work"><p>placeholder</p></section>
<div id="albums"><p>loading</p></div>
<h1 id="album-title">Album</h1>
<div id="gallery"></div>
<div id="lightbox" hidden><button id="lb-close">x</button><button id="lb-prev">&lt;</button><img id="lb-img" alt=""><button id="lb-next">&gt;</button></div>
</body></html>`

func parse(t *testing.T, shell string) *dom.Document {
	t.Helper()

	doc, err := dom.Parse(strings.NewReader(shell))
	require.NoError(t, err)
	return doc
}

type manualScheduler struct {
	intervals []time.Duration
	fns       []func()
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) {
	s.intervals = append(s.intervals, interval)
	s.fns = append(s.fns, fn)
}

func (s *manualScheduler) tick() {
	for _, fn := range s.fns {
		fn()
	}
}

func click(t *testing.T, doc *dom.Document, n *html.Node) {
	t.Helper()

	ref, ok := dom.GetAttr(n, dom.RefAttr)
	require.True(t, ok, "element has no click listener")

	for _, listener := range doc.Listeners(ref) {
		listener()
	}
}

func attr(n *html.Node, key string) string {
	value, _ := dom.GetAttr(n, key)
	return value
}
