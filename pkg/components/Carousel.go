package components

import (
	"fmt"
	"time"

	"github.com/adampresley/photogallery/pkg/dom"
	"golang.org/x/net/html"
)

const (
	CarouselTrackID     = "carousel-track"
	CarouselPrevID      = "prev"
	CarouselNextID      = "next"
	AutoAdvanceInterval = 5 * time.Second
)

/*
Scheduler runs fn every interval on the owner's event loop until the
owner goes away.
*/
type Scheduler interface {
	Every(interval time.Duration, fn func())
}

/*
Carousel is the landing page image strip. Manual navigation and the
auto advance timer share one position counter.
*/
type Carousel struct {
	track *html.Node
	total int
	index int
}

/*
MountCarousel fills the carousel track with images. Without a track it
does nothing and returns nil. Without images no listener or timer is
registered.
*/
func MountCarousel(doc *dom.Document, images []string, scheduler Scheduler) *Carousel {
	track := doc.GetElementByID(CarouselTrackID)

	if track == nil {
		return nil
	}

	for _, src := range images {
		img := doc.CreateElement("img")
		dom.SetAttr(img, "src", src)
		dom.SetAttr(img, "loading", "lazy")
		track.AppendChild(img)
	}

	result := &Carousel{
		track: track,
		total: len(images),
	}

	if result.total == 0 {
		return result
	}

	if prev := doc.GetElementByID(CarouselPrevID); prev != nil {
		doc.AddClickListener(prev, result.Prev)
	}

	if next := doc.GetElementByID(CarouselNextID); next != nil {
		doc.AddClickListener(next, result.Next)
	}

	scheduler.Every(AutoAdvanceInterval, result.Next)
	return result
}

func (c *Carousel) Index() int {
	if c == nil {
		return 0
	}

	return c.index
}

func (c *Carousel) Len() int {
	if c == nil {
		return 0
	}

	return c.total
}

func (c *Carousel) Next() {
	if c == nil || c.total == 0 {
		return
	}

	c.index = (c.index + 1) % c.total
	c.update()
}

func (c *Carousel) Prev() {
	if c == nil || c.total == 0 {
		return
	}

	c.index = (c.index - 1 + c.total) % c.total
	c.update()
}

func (c *Carousel) update() {
	dom.SetStyle(c.track, "transform", fmt.Sprintf("translateX(-%d%%)", c.index*100))
}
