package page

import (
	"encoding/json"
	"fmt"

	"github.com/adampresley/photogallery/pkg/components"
	"github.com/adampresley/photogallery/pkg/dom"
	"golang.org/x/net/html"
)

const (
	KeyListenerID = "lb-keys"
)

func SessionURL(id string) string {
	return "/session/" + id
}

func EventsURL(id string) string {
	return SessionURL(id) + "/events"
}

/*
WireInteractions writes the htmx attributes that turn browser clicks and
key presses into session events. It runs once, after the bootstrapper
has registered every listener. The response to an event is the whole
document, from which htmx swaps the site wrapper.
*/
func WireInteractions(p *Page, sessionID string) {
	doc := p.Doc
	eventsURL := EventsURL(sessionID)

	site := doc.GetElementByID(SiteID)
	if site != nil {
		dom.SetAttr(site, "hx-target", "#"+SiteID)
		dom.SetAttr(site, "hx-select", "#"+SiteID)
		dom.SetAttr(site, "hx-swap", "outerHTML")
	}

	doc.Walk(func(n *html.Node) bool {
		if ref, ok := dom.GetAttr(n, dom.RefAttr); ok {
			postTarget(n, eventsURL, ref)
		}

		return true
	})

	for _, id := range []string{components.LightboxCloseID, components.LightboxPrevID, components.LightboxNextID} {
		if n := doc.GetElementByID(id); n != nil {
			postTarget(n, eventsURL, id)
		}
	}

	if p.Carousel.Len() > 0 {
		track := doc.GetElementByID(components.CarouselTrackID)
		dom.SetAttr(track, "hx-get", SessionURL(sessionID))
		dom.SetAttr(track, "hx-trigger", fmt.Sprintf("every %ds", int(components.AutoAdvanceInterval.Seconds())))
		dom.SetAttr(track, "hx-select", "#"+components.CarouselTrackID)
		dom.SetAttr(track, "hx-target", "this")
		dom.SetAttr(track, "hx-swap", "outerHTML")
	}

	if !p.Capabilities.Lightbox {
		return
	}

	overlay := doc.GetElementByID(components.LightboxID)
	postTarget(overlay, eventsURL, components.LightboxID)
	dom.SetAttr(overlay, "hx-trigger", fmt.Sprintf("click[target.id=='%s']", components.LightboxID))

	keys := doc.CreateElement("div")
	dom.SetAttr(keys, "id", KeyListenerID)
	dom.SetHidden(keys, true)
	dom.SetAttr(keys, "hx-post", eventsURL)
	dom.SetAttr(keys, "hx-trigger", "keydown[key=='Escape'||key=='ArrowLeft'||key=='ArrowRight'] from:body")
	dom.SetAttr(keys, "hx-vals", "js:{key: event.key}")

	parent := site
	if parent == nil {
		parent = doc.Body()
	}

	if parent != nil {
		parent.AppendChild(keys)
	}
}

func postTarget(n *html.Node, eventsURL, target string) {
	vals, _ := json.Marshal(map[string]string{"target": target})

	dom.SetAttr(n, "hx-post", eventsURL)
	dom.SetAttr(n, "hx-vals", string(vals))
}
