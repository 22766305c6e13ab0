package components

import (
	"slices"

	"github.com/adampresley/photogallery/pkg/dom"
	"golang.org/x/net/html"
)

const (
	LightboxID      = "lightbox"
	LightboxImageID = "lb-img"
	LightboxCloseID = "lb-close"
	LightboxPrevID  = "lb-prev"
	LightboxNextID  = "lb-next"
)

type Command int

const (
	CommandNone Command = iota
	CommandClose
	CommandPrev
	CommandNext
)

func (c Command) String() string {
	switch c {
	case CommandClose:
		return "close"
	case CommandPrev:
		return "prev"
	case CommandNext:
		return "next"
	default:
		return "none"
	}
}

// CommandForTarget maps the id of a clicked element to a lightbox command.
func CommandForTarget(id string) Command {
	switch id {
	case LightboxCloseID, LightboxID:
		return CommandClose
	case LightboxPrevID:
		return CommandPrev
	case LightboxNextID:
		return CommandNext
	default:
		return CommandNone
	}
}

func CommandForKey(key string) Command {
	switch key {
	case "Escape":
		return CommandClose
	case "ArrowLeft":
		return CommandPrev
	case "ArrowRight":
		return CommandNext
	default:
		return CommandNone
	}
}

/*
LightboxState is the navigable image set of the lightbox. An empty set
means the lightbox is closed. Open, Prev, Next and Close are the only
ways to change it.
*/
type LightboxState struct {
	images []string
	index  int
}

/*
Open replaces the navigable set with all and points at src. A nil or
empty all means src alone. When src is not part of all the index is 0.
*/
func (s *LightboxState) Open(src string, all []string) {
	if len(all) == 0 {
		all = []string{src}
	}

	s.images = slices.Clone(all)
	s.index = slices.Index(s.images, src)

	if s.index == -1 {
		s.index = 0
	}
}

func (s *LightboxState) Prev() {
	if len(s.images) == 0 {
		return
	}

	s.index = (s.index - 1 + len(s.images)) % len(s.images)
}

func (s *LightboxState) Next() {
	if len(s.images) == 0 {
		return
	}

	s.index = (s.index + 1) % len(s.images)
}

func (s *LightboxState) Close() {
	s.images = nil
	s.index = 0
}

func (s *LightboxState) Apply(cmd Command) {
	switch cmd {
	case CommandClose:
		s.Close()
	case CommandPrev:
		s.Prev()
	case CommandNext:
		s.Next()
	}
}

func (s *LightboxState) IsOpen() bool {
	return len(s.images) > 0
}

func (s *LightboxState) Index() int {
	return s.index
}

func (s *LightboxState) Images() []string {
	return slices.Clone(s.images)
}

// Current is the image on display, or "" when closed.
func (s *LightboxState) Current() string {
	if len(s.images) == 0 {
		return ""
	}

	return s.images[s.index]
}

/*
Lightbox renders a LightboxState into the overlay elements of a page.
The state is kept even when the page has no overlay.
*/
type Lightbox struct {
	state   LightboxState
	overlay *html.Node
	image   *html.Node
	prev    *html.Node
	next    *html.Node
}

func NewLightbox(doc *dom.Document) *Lightbox {
	return &Lightbox{
		overlay: doc.GetElementByID(LightboxID),
		image:   doc.GetElementByID(LightboxImageID),
		prev:    doc.GetElementByID(LightboxPrevID),
		next:    doc.GetElementByID(LightboxNextID),
	}
}

func (l *Lightbox) State() *LightboxState {
	return &l.state
}

func (l *Lightbox) Mounted() bool {
	return l.overlay != nil && l.image != nil
}

func (l *Lightbox) Open(src string, all []string) {
	l.state.Open(src, all)
	l.render()
}

func (l *Lightbox) Apply(cmd Command) {
	if cmd == CommandNone {
		return
	}

	l.state.Apply(cmd)
	l.render()
}

// HandleClick applies the command of a clicked element id, if it has one.
func (l *Lightbox) HandleClick(target string) {
	l.Apply(CommandForTarget(target))
}

// HandleKey applies a key command. Keys are ignored while closed.
func (l *Lightbox) HandleKey(key string) {
	if !l.state.IsOpen() {
		return
	}

	l.Apply(CommandForKey(key))
}

func (l *Lightbox) render() {
	if !l.Mounted() {
		return
	}

	if !l.state.IsOpen() {
		dom.SetHidden(l.overlay, true)
		return
	}

	dom.SetAttr(l.image, "src", l.state.Current())
	dom.SetHidden(l.overlay, false)

	if l.prev != nil && l.next != nil {
		display := "none"

		if len(l.state.images) > 1 {
			display = "block"
		}

		dom.SetStyle(l.prev, "display", display)
		dom.SetStyle(l.next, "display", display)
	}
}
