package components

import (
	"github.com/adampresley/photogallery/pkg/dom"
)

const (
	GalleryContainerID = "gallery"
	AlbumTitleID       = "album-title"
)

/*
BuildGallery renders every image of one album. A click on an image opens
it alone in the lightbox; album images are not navigable from there.
*/
func BuildGallery(doc *dom.Document, images []string, title string, lightbox *Lightbox) {
	if titleNode := doc.GetElementByID(AlbumTitleID); titleNode != nil {
		dom.SetText(titleNode, title)
	}

	container := doc.GetElementByID(GalleryContainerID)

	if container == nil {
		return
	}

	dom.ClearChildren(container)

	for _, src := range images {
		img := doc.CreateElement("img")
		dom.SetAttr(img, "src", src)
		dom.SetAttr(img, "loading", "lazy")

		doc.AddClickListener(img, func() {
			lightbox.Open(src, nil)
		})

		container.AppendChild(img)
	}
}
