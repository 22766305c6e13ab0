package components

import (
	"fmt"
	"strings"

	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/adampresley/photogallery/pkg/models"
)

const (
	AlbumsContainerID = "albums"
	AlbumPage         = "album.html"
	AlbumQueryParam   = "album"
)

// ResolvedAlbum is an album name with its images as asset paths.
type ResolvedAlbum struct {
	Name   string
	Images []string
}

/*
BuildAlbumsGrid replaces the content of the albums container with one
tile per album, in the order given. Titles come from the catalog when it
has one for the album.
*/
func BuildAlbumsGrid(doc *dom.Document, albums []ResolvedAlbum, catalog *models.AlbumCatalog) {
	container := doc.GetElementByID(AlbumsContainerID)

	if container == nil {
		return
	}

	dom.ClearChildren(container)

	for _, album := range albums {
		tile := doc.CreateElement("a")
		dom.SetAttr(tile, "class", "album-tile")
		dom.SetAttr(tile, "href", AlbumLink(album.Name))

		thumb := doc.CreateElement("img")
		dom.SetAttr(thumb, "class", "album-thumb")

		if len(album.Images) > 0 {
			dom.SetAttr(thumb, "src", album.Images[0])
		}

		title := doc.CreateElement("div")
		dom.SetAttr(title, "class", "album-title")
		dom.SetText(title, albumTitle(album.Name, catalog))

		count := doc.CreateElement("div")
		dom.SetAttr(count, "class", "album-count")
		dom.SetText(count, fmt.Sprintf("%d images", len(album.Images)))

		tile.AppendChild(thumb)
		tile.AppendChild(title)
		tile.AppendChild(count)
		container.AppendChild(tile)
	}
}

func albumTitle(name string, catalog *models.AlbumCatalog) string {
	if entry, ok := catalog.Get(name); ok && entry.Title != "" {
		return entry.Title
	}

	return models.DeriveTitle(name)
}

// AlbumLink is the album view address for an album name.
func AlbumLink(name string) string {
	return AlbumPage + "?" + AlbumQueryParam + "=" + EncodeURIComponent(name)
}

/*
EncodeURIComponent percent-encodes every byte except ASCII letters,
digits and - _ . ! ~ * ' ( ), matching the browser function of the same
name.
*/
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]

		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) != -1
}
