package dom

import (
	"strings"

	"golang.org/x/net/html"
)

func GetAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}

	return "", false
}

func SetAttr(n *html.Node, key, value string) {
	for index, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr[index].Val = value
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]

	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}

		attrs = append(attrs, attr)
	}

	n.Attr = attrs
}

func ClearChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	ClearChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func Text(n *html.Node) string {
	var b strings.Builder

	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}

	collect(n)
	return b.String()
}

func Children(n *html.Node) []*html.Node {
	result := []*html.Node{}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			result = append(result, child)
		}
	}

	return result
}

func SetHidden(n *html.Node, hidden bool) {
	if hidden {
		SetAttr(n, "hidden", "")
		return
	}

	RemoveAttr(n, "hidden")
}

func IsHidden(n *html.Node) bool {
	_, ok := GetAttr(n, "hidden")
	return ok
}

/*
SetStyle sets one declaration of the inline style attribute, keeping
the other declarations and their order.
*/
func SetStyle(n *html.Node, property, value string) {
	style, _ := GetAttr(n, "style")
	declarations := parseStyle(style)
	found := false

	for index, declaration := range declarations {
		if declaration[0] == property {
			declarations[index][1] = value
			found = true
		}
	}

	if !found {
		declarations = append(declarations, [2]string{property, value})
	}

	parts := make([]string, 0, len(declarations))

	for _, declaration := range declarations {
		parts = append(parts, declaration[0]+": "+declaration[1])
	}

	SetAttr(n, "style", strings.Join(parts, "; "))
}

func Style(n *html.Node, property string) string {
	style, _ := GetAttr(n, "style")

	for _, declaration := range parseStyle(style) {
		if declaration[0] == property {
			return declaration[1]
		}
	}

	return ""
}

func parseStyle(style string) [][2]string {
	result := [][2]string{}

	for _, part := range strings.Split(style, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		result = append(result, [2]string{strings.TrimSpace(property), strings.TrimSpace(value)})
	}

	return result
}
