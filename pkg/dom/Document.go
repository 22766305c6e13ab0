package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	RefAttr = "data-ref"
)

type Listener func()

/*
Document is a parsed page shell that components mutate in place.
Click listeners are attached to elements through a ref attribute so an
incoming event can name the element it was raised on.
*/
type Document struct {
	root      *html.Node
	listeners map[string][]Listener
	nextRef   int
}

func Parse(r io.Reader) (*Document, error) {
	var (
		err  error
		root *html.Node
	)

	if root, err = html.Parse(r); err != nil {
		return nil, fmt.Errorf("error parsing page shell: %w", err)
	}

	return &Document{
		root:      root,
		listeners: map[string][]Listener{},
	}, nil
}

func (d *Document) Root() *html.Node {
	return d.root
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	var result *html.Node

	d.Walk(func(n *html.Node) bool {
		if value, ok := GetAttr(n, "id"); ok && value == id {
			result = n
			return false
		}

		return true
	})

	return result
}

func (d *Document) Body() *html.Node {
	var result *html.Node

	d.Walk(func(n *html.Node) bool {
		if n.DataAtom == atom.Body {
			result = n
			return false
		}

		return true
	})

	return result
}

func (d *Document) CreateElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

/*
AddClickListener registers fn for clicks on n and returns the ref that
identifies n in incoming events. Several listeners may share a node.
*/
func (d *Document) AddClickListener(n *html.Node, fn Listener) string {
	ref, ok := GetAttr(n, RefAttr)

	if !ok {
		d.nextRef++
		ref = fmt.Sprintf("e%d", d.nextRef)
		SetAttr(n, RefAttr, ref)
	}

	d.listeners[ref] = append(d.listeners[ref], fn)
	return ref
}

func (d *Document) Listeners(ref string) []Listener {
	return d.listeners[ref]
}

/*
Walk visits element nodes depth first in document order. Returning false
from fn stops the walk.
*/
func (d *Document) Walk(fn func(n *html.Node) bool) {
	walk(d.root, fn)
}

func walk(n *html.Node, fn func(n *html.Node) bool) bool {
	if n.Type == html.ElementNode && !fn(n) {
		return false
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if !walk(child, fn) {
			return false
		}
	}

	return true
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}
