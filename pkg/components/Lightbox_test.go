package components

import (
	"testing"

	"github.com/adampresley/photogallery/pkg/dom"
	"github.com/stretchr/testify/assert"
)

func TestLightboxStateNavigation(t *testing.T) {
	state := &LightboxState{}

	state.Open("b.jpg", []string{"a.jpg", "b.jpg", "c.jpg"})
	assert.True(t, state.IsOpen())
	assert.Equal(t, 1, state.Index())

	state.Next()
	assert.Equal(t, 2, state.Index())

	state.Next()
	assert.Equal(t, 0, state.Index())
	assert.Equal(t, "a.jpg", state.Current())

	state.Prev()
	assert.Equal(t, 2, state.Index())

	state.Close()
	state.Next()
	assert.False(t, state.IsOpen())
	assert.Equal(t, 0, state.Index())
	assert.Empty(t, state.Images())
	assert.Equal(t, "", state.Current())
}

func TestLightboxStateOpenDefaults(t *testing.T) {
	state := &LightboxState{}

	state.Open("solo.jpg", nil)
	assert.Equal(t, []string{"solo.jpg"}, state.Images())
	assert.Equal(t, 0, state.Index())

	state.Open("missing.jpg", []string{"a.jpg", "b.jpg"})
	assert.Equal(t, 0, state.Index())
	assert.Equal(t, "a.jpg", state.Current())

	state.Prev()
	assert.Equal(t, 1, state.Index())
}

func TestLightboxStateOpenCopiesTheSet(t *testing.T) {
	state := &LightboxState{}
	all := []string{"a.jpg", "b.jpg"}

	state.Open("a.jpg", all)
	all[0] = "changed.jpg"

	assert.Equal(t, "a.jpg", state.Current())
}

func TestCommandMapping(t *testing.T) {
	assert.Equal(t, CommandClose, CommandForTarget("lb-close"))
	assert.Equal(t, CommandClose, CommandForTarget("lightbox"))
	assert.Equal(t, CommandPrev, CommandForTarget("lb-prev"))
	assert.Equal(t, CommandNext, CommandForTarget("lb-next"))
	assert.Equal(t, CommandNone, CommandForTarget("lb-img"))
	assert.Equal(t, CommandNone, CommandForTarget("next"))

	assert.Equal(t, CommandClose, CommandForKey("Escape"))
	assert.Equal(t, CommandPrev, CommandForKey("ArrowLeft"))
	assert.Equal(t, CommandNext, CommandForKey("ArrowRight"))
	assert.Equal(t, CommandNone, CommandForKey("Enter"))

	assert.Equal(t, "next", CommandNext.String())
	assert.Equal(t, "none", Command(42).String())
}

func TestLightboxRendersIntoOverlay(t *testing.T) {
	doc := parse(t, fullShell)
	lightbox := NewLightbox(doc)
	overlay := doc.GetElementByID(LightboxID)
	img := doc.GetElementByID(LightboxImageID)
	prev := doc.GetElementByID(LightboxPrevID)
	next := doc.GetElementByID(LightboxNextID)

	assert.True(t, lightbox.Mounted())
	assert.True(t, dom.IsHidden(overlay))

	lightbox.Open("b.jpg", []string{"a.jpg", "b.jpg", "c.jpg"})
	assert.False(t, dom.IsHidden(overlay))
	assert.Equal(t, "b.jpg", attr(img, "src"))
	assert.Equal(t, "block", dom.Style(prev, "display"))
	assert.Equal(t, "block", dom.Style(next, "display"))

	lightbox.HandleClick(LightboxNextID)
	assert.Equal(t, "c.jpg", attr(img, "src"))

	lightbox.HandleKey("ArrowRight")
	assert.Equal(t, "a.jpg", attr(img, "src"))

	lightbox.HandleKey("ArrowLeft")
	assert.Equal(t, "c.jpg", attr(img, "src"))

	lightbox.HandleClick(LightboxImageID)
	assert.True(t, lightbox.State().IsOpen())

	lightbox.HandleKey("Escape")
	assert.True(t, dom.IsHidden(overlay))
	assert.False(t, lightbox.State().IsOpen())

	lightbox.Open("solo.jpg", nil)
	assert.Equal(t, "none", dom.Style(prev, "display"))
	assert.Equal(t, "none", dom.Style(next, "display"))

	lightbox.HandleClick(LightboxID)
	assert.True(t, dom.IsHidden(overlay))
}

func TestLightboxIgnoresKeysWhileClosed(t *testing.T) {
	doc := parse(t, fullShell)
	lightbox := NewLightbox(doc)

	lightbox.HandleKey("ArrowRight")
	lightbox.HandleKey("Escape")

	assert.False(t, lightbox.State().IsOpen())
	assert.Equal(t, 0, lightbox.State().Index())
	assert.True(t, dom.IsHidden(doc.GetElementByID(LightboxID)))
}

func TestLightboxWithoutOverlayKeepsState(t *testing.T) {
	doc := parse(t, `<html><body></body></html>`)
	lightbox := NewLightbox(doc)

	assert.False(t, lightbox.Mounted())

	lightbox.Open("b.jpg", []string{"a.jpg", "b.jpg"})
	lightbox.Apply(CommandNext)

	assert.Equal(t, 0, lightbox.State().Index())
}
