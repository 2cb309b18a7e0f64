// Package text writes OutputTrees as plain text for feeds and terminals.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stanjdev/folio/internal/core"
)

type Exporter struct {
	tag language.Tag
}

// New returns an Exporter that cases page headings for tag.
func New(tag language.Tag) *Exporter {
	return &Exporter{tag: tag}
}

// Render lays out tree as paragraphs separated by blank lines. Top headings
// are upper-cased and underlined, links keep their URL in angle brackets and
// code is indented by four spaces.
func (e *Exporter) Render(tree core.OutputTree) []byte {
	w := &writer{upper: cases.Upper(e.tag)}
	for _, n := range tree.Nodes {
		w.block(n)
	}
	if len(w.parts) == 0 {
		return nil
	}
	return []byte(strings.Join(w.parts, "\n\n") + "\n")
}

type writer struct {
	upper cases.Caser
	parts []string
}

func (w *writer) add(s string) {
	if strings.TrimSpace(s) != "" {
		w.parts = append(w.parts, s)
	}
}

func (w *writer) block(n core.Node) {
	switch n.Tag {
	case "":
		w.add(strings.TrimSpace(n.Text))
	case "h1":
		title := w.upper.String(inline(n))
		w.add(title + "\n" + strings.Repeat("=", utf8.RuneCountInString(title)))
	case "h2":
		heading := inline(n)
		w.add(heading + "\n" + strings.Repeat("-", utf8.RuneCountInString(heading)))
	case "p", "figcaption":
		w.add(inline(n))
	case "blockquote":
		w.add("> " + inline(n))
	case "ul":
		var items []string
		for _, li := range n.Children {
			if li.Tag == "li" {
				items = append(items, "- "+inline(li))
			}
		}
		w.add(strings.Join(items, "\n"))
	case "pre":
		w.add(indent(strings.TrimRight(n.TextContent(), "\n"), "    "))
	case "img":
		src, _ := n.Attr("src")
		if alt, _ := n.Attr("alt"); alt != "" {
			w.add("[image: " + alt + "] " + src)
		} else {
			w.add("[image] " + src)
		}
	default:
		for _, c := range n.Children {
			w.block(c)
		}
	}
}

func inline(n core.Node) string {
	var b strings.Builder
	writeInline(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeInline(b *strings.Builder, n core.Node) {
	switch {
	case n.IsText():
		b.WriteString(n.Text)
	case n.Tag == "code":
		b.WriteString("`" + n.TextContent() + "`")
	case n.Tag == "a":
		label := n.TextContent()
		b.WriteString(label)
		if href, _ := n.Attr("href"); href != "" && href != label {
			b.WriteString(" <" + href + ">")
		}
	default:
		for _, c := range n.Children {
			writeInline(b, c)
		}
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
