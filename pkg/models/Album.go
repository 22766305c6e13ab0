package models

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	AlbumFrontPage = "front-page"
)

/*
AlbumEntry is the canonical shape of a single album in the catalog.
Images are file names in display order.
*/
type AlbumEntry struct {
	Title  string
	Images []string
}

/*
AlbumCatalog maps album names to entries while keeping the order
in which the albums were declared in the catalog document.
*/
type AlbumCatalog struct {
	entries *orderedmap.OrderedMap[string, AlbumEntry]
}

func NewAlbumCatalog() *AlbumCatalog {
	return &AlbumCatalog{
		entries: orderedmap.New[string, AlbumEntry](),
	}
}

// Set adds or replaces an album. Replacing keeps the original position.
func (c *AlbumCatalog) Set(name string, entry AlbumEntry) {
	if c.entries == nil {
		c.entries = orderedmap.New[string, AlbumEntry]()
	}

	c.entries.Set(name, entry)
}

func (c *AlbumCatalog) Get(name string) (AlbumEntry, bool) {
	if c == nil || c.entries == nil {
		return AlbumEntry{}, false
	}

	return c.entries.Get(name)
}

func (c *AlbumCatalog) Names() []string {
	result := make([]string, 0, c.Len())

	if c == nil || c.entries == nil {
		return result
	}

	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key)
	}

	return result
}

func (c *AlbumCatalog) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}

	return c.entries.Len()
}

/*
DeriveTitle humanizes an album or selection name by replacing every
dash with a space. It is the only title derivation rule in the site.
*/
func DeriveTitle(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}
