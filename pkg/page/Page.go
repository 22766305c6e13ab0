package page

import (
	"github.com/adampresley/photogallery/pkg/components"
	"github.com/adampresley/photogallery/pkg/dom"
)

const (
	YearID = "year"
	SiteID = "site"
)

// Capabilities records which optional sections a page shell provides.
type Capabilities struct {
	Year         bool
	Carousel     bool
	Albums       bool
	SelectedWork bool
	Gallery      bool
	Lightbox     bool
}

/*
Probe looks for every optional mount point once. The bootstrapper
branches on the result instead of querying the document again.
*/
func Probe(doc *dom.Document) Capabilities {
	has := func(id string) bool {
		return doc.GetElementByID(id) != nil
	}

	return Capabilities{
		Year:         has(YearID),
		Carousel:     has(components.CarouselTrackID),
		Albums:       has(components.AlbumsContainerID),
		SelectedWork: has(components.SelectedWorkContainerID),
		Gallery:      has(components.GalleryContainerID),
		Lightbox:     has(components.LightboxID) && has(components.LightboxImageID),
	}
}

/*
Page is one rendered page view: the document, its single lightbox and the
carousel when one was mounted.
*/
type Page struct {
	Doc          *dom.Document
	Lightbox     *components.Lightbox
	Carousel     *components.Carousel
	Capabilities Capabilities
}

func NewPage(doc *dom.Document) *Page {
	return &Page{
		Doc:          doc,
		Lightbox:     components.NewLightbox(doc),
		Capabilities: Probe(doc),
	}
}

/*
Click delivers a click raised on target, which is an element id or a
listener ref. The lightbox sees every click first, then the listeners
registered on the element run.
*/
func (p *Page) Click(target string) {
	p.Lightbox.HandleClick(target)

	for _, listener := range p.Doc.Listeners(target) {
		listener()
	}
}

func (p *Page) KeyDown(key string) {
	p.Lightbox.HandleKey(key)
}
