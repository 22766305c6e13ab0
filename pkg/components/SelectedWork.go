package components

import (
	"github.com/adampresley/photogallery/pkg/dom"
)

const (
	SelectedWorkContainerID = "selected-work"
)

// BuildSelectedWork renders the curated strip. Any thumbnail opens the whole strip in the lightbox.
func BuildSelectedWork(doc *dom.Document, images []string, lightbox *Lightbox) {
	container := doc.GetElementByID(SelectedWorkContainerID)

	if container == nil {
		return
	}

	dom.ClearChildren(container)

	for _, src := range images {
		link := doc.CreateElement("a")
		dom.SetAttr(link, "href", "#")

		doc.AddClickListener(link, func() {
			lightbox.Open(src, images)
		})

		img := doc.CreateElement("img")
		dom.SetAttr(img, "src", src)
		dom.SetAttr(img, "loading", "lazy")
		dom.SetAttr(img, "class", "selected-thumb")

		link.AppendChild(img)
		container.AppendChild(link)
	}
}
