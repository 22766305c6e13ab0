package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shell = `<!DOCTYPE html><html><head><title>t</title></head><body>
<div id="albums"><span>old</span></div>
<img id="lb-img" style="display: block; width: 10px">
</body></html>`

func parseShell(t *testing.T) *Document {
	t.Helper()

	doc, err := Parse(strings.NewReader(shell))
	require.NoError(t, err)
	return doc
}

func TestGetElementByID(t *testing.T) {
	doc := parseShell(t)

	albums := doc.GetElementByID("albums")
	require.NotNil(t, albums)
	assert.Equal(t, "div", albums.Data)
	assert.Nil(t, doc.GetElementByID("carousel-track"))
	assert.NotNil(t, doc.Body())
}

func TestClearAndAppend(t *testing.T) {
	doc := parseShell(t)
	albums := doc.GetElementByID("albums")

	ClearChildren(albums)
	assert.Empty(t, Children(albums))

	img := doc.CreateElement("img")
	SetAttr(img, "src", "a.jpg")
	albums.AppendChild(img)

	assert.Contains(t, doc.String(), `<div id="albums"><img src="a.jpg"/></div>`)
}

func TestSetTextReplacesChildren(t *testing.T) {
	doc := parseShell(t)
	albums := doc.GetElementByID("albums")

	SetText(albums, "2026")
	assert.Equal(t, "2026", Text(albums))
	assert.Empty(t, Children(albums))
}

func TestSetStyleKeepsOtherDeclarations(t *testing.T) {
	doc := parseShell(t)
	img := doc.GetElementByID("lb-img")

	SetStyle(img, "display", "none")
	SetStyle(img, "transform", "translateX(-100%)")

	style, _ := GetAttr(img, "style")
	assert.Equal(t, "display: none; width: 10px; transform: translateX(-100%)", style)
	assert.Equal(t, "none", Style(img, "display"))
	assert.Equal(t, "", Style(img, "height"))
}

func TestSetHidden(t *testing.T) {
	doc := parseShell(t)
	img := doc.GetElementByID("lb-img")

	SetHidden(img, true)
	assert.True(t, IsHidden(img))

	SetHidden(img, false)
	assert.False(t, IsHidden(img))
}

func TestAddClickListenerAssignsStableRef(t *testing.T) {
	doc := parseShell(t)
	img := doc.GetElementByID("lb-img")
	calls := 0

	first := doc.AddClickListener(img, func() { calls++ })
	second := doc.AddClickListener(img, func() { calls += 10 })
	assert.Equal(t, first, second)

	for _, listener := range doc.Listeners(first) {
		listener()
	}

	assert.Equal(t, 11, calls)
	assert.Empty(t, doc.Listeners("missing"))

	other := doc.AddClickListener(doc.GetElementByID("albums"), func() {})
	assert.NotEqual(t, first, other)
}
