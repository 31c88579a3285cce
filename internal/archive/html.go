package archive

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	doctype    = "<!DOCTYPE html>"
	indentUnit = "  "
	scriptSrc  = "./index.js"
	stylesheet = "./index.css"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\u00a0", "&nbsp;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Children of these are written verbatim.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "noscript": true, "plaintext": true,
}

// The parser drops one newline right after these open tags.
var leadingNewlineElements = map[string]bool{
	"pre": true, "textarea": true, "listing": true,
}

// Content of these is kept on the tag's line without reflowing.
var preformattedElements = map[string]bool{
	"pre": true, "textarea": true, "title": true, "listing": true,
}

var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "del": true, "dfn": true,
	"em": true, "i": true, "img": true, "ins": true, "kbd": true,
	"label": true, "mark": true, "q": true, "s": true, "samp": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
	"time": true, "u": true, "var": true, "wbr": true,
}

// RenderHTML parses markup as an HTML5 document, links index.js and
// index.css from its head and returns it pretty-printed behind a doctype.
// Malformed markup never fails; the parser falls back to a minimal
// html/head/body tree.
func RenderHTML(markup string) string {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		root, _ = html.Parse(strings.NewReader(""))
	}
	doc := documentElement(root)
	if doc == nil {
		return doctype + "\n"
	}
	linkAssets(doc)

	var sb strings.Builder
	sb.WriteString(doctype)
	sb.WriteString("\n")
	writeBlock(&sb, doc, 0)
	return sb.String()
}

func documentElement(root *html.Node) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}

func linkAssets(doc *html.Node) {
	var head *html.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Head {
			head = c
			break
		}
	}
	if head == nil {
		head = &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		doc.InsertBefore(head, doc.FirstChild)
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "src", Val: scriptSrc}, {Key: "defer"}},
	})
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr:     []html.Attribute{{Key: "rel", Val: "stylesheet"}, {Key: "href", Val: stylesheet}},
	})
}

// writeBlock writes n on its own line(s) at the given depth.
func writeBlock(sb *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		sb.WriteString(indent)
		sb.WriteString(textEscaper.Replace(text))
		sb.WriteString("\n")
		return
	case html.CommentNode:
		sb.WriteString(indent)
		writeInline(sb, n, false)
		sb.WriteString("\n")
		return
	case html.ElementNode:
	default:
		return
	}

	if voidElements[n.Data] || rawTextElements[n.Data] || preformattedElements[n.Data] {
		sb.WriteString(indent)
		writeInline(sb, n, false)
		sb.WriteString("\n")
		return
	}
	if inlineContent(n) {
		sb.WriteString(indent)
		writeOpenTag(sb, n)
		var inner strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeInline(&inner, c, false)
		}
		sb.WriteString(strings.TrimSpace(inner.String()))
		writeCloseTag(sb, n)
		sb.WriteString("\n")
		return
	}

	sb.WriteString(indent)
	writeOpenTag(sb, n)
	sb.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeBlock(sb, c, depth+1)
	}
	sb.WriteString(indent)
	writeCloseTag(sb, n)
	sb.WriteString("\n")
}

// writeInline serializes n and its subtree without adding layout.
func writeInline(sb *strings.Builder, n *html.Node, raw bool) {
	switch n.Type {
	case html.TextNode:
		if raw {
			sb.WriteString(n.Data)
		} else {
			sb.WriteString(textEscaper.Replace(n.Data))
		}
	case html.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case html.ElementNode:
		writeOpenTag(sb, n)
		if voidElements[n.Data] {
			return
		}
		if leadingNewlineElements[n.Data] {
			if c := n.FirstChild; c != nil && c.Type == html.TextNode && strings.HasPrefix(c.Data, "\n") {
				sb.WriteString("\n")
			}
		}
		childRaw := rawTextElements[n.Data]
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeInline(sb, c, childRaw)
		}
		writeCloseTag(sb, n)
	}
}

func inlineContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode, html.CommentNode:
		case html.ElementNode:
			if !inlineElements[c.Data] || !inlineContent(c) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func writeOpenTag(sb *strings.Builder, n *html.Node) {
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		if a.Namespace != "" {
			sb.WriteString(a.Namespace)
			sb.WriteString(":")
		}
		sb.WriteString(a.Key)
		if a.Val == "" {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
}

func writeCloseTag(sb *strings.Builder, n *html.Node) {
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteString(">")
}
