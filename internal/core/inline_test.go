package core

import (
	"reflect"
	"testing"
)

func TestInline(t *testing.T) {
	r := NewRenderer(Site{Host: "stanjdev.com"})

	tests := []struct {
		name string
		in   string
		want []Node
	}{
		{
			name: "plain text",
			in:   "Books imported from a CSV file",
			want: []Node{text("Books imported from a CSV file")},
		},
		{
			name: "code span",
			in:   "use the `DATABASE_URL` variable",
			want: []Node{
				text("use the "),
				element("code", nil, text("DATABASE_URL")),
				text(" variable"),
			},
		},
		{
			name: "internal link",
			in:   "see [projects](/projects)",
			want: []Node{
				text("see "),
				element("a", []Attr{{Key: "href", Value: "/projects"}}, text("projects")),
			},
		},
		{
			name: "external link",
			in:   "[API](https://www.goodreads.com/api) data",
			want: []Node{
				element("a", []Attr{
					{Key: "href", Value: "https://www.goodreads.com/api"},
					{Key: "target", Value: "_blank"},
					{Key: "rel", Value: "noopener noreferrer"},
				}, text("API")),
				text(" data"),
			},
		},
		{
			name: "balanced parentheses stay in the url",
			in:   "See [Go](https://en.wikipedia.org/wiki/Go_(programming_language)) now",
			want: []Node{
				text("See "),
				element("a", []Attr{
					{Key: "href", Value: "https://en.wikipedia.org/wiki/Go_(programming_language)"},
					{Key: "target", Value: "_blank"},
					{Key: "rel", Value: "noopener noreferrer"},
				}, text("Go")),
				text(" now"),
			},
		},
		{
			name: "code inside link label is flattened",
			in:   "[run `make`](/docs)",
			want: []Node{
				element("a", []Attr{{Key: "href", Value: "/docs"}}, text("run make")),
			},
		},
		{
			name: "escaped brackets stay literal",
			in:   `\[not a link\](x)`,
			want: []Node{text("[not a link](x)")},
		},
		{
			name: "emphasis markers stay literal",
			in:   "*Go* and _templ_",
			want: []Node{text("*Go* and _templ_")},
		},
		{
			name: "html stays text",
			in:   "a <b>bold</b> claim",
			want: []Node{text("a <b>bold</b> claim")},
		},
		{
			name: "heading marker stays text",
			in:   "# not a heading",
			want: []Node{text("# not a heading")},
		},
		{
			name: "image is flattened to its alt",
			in:   "see ![diagram](/a.png)",
			want: []Node{text("see diagram")},
		},
		{
			name: "unclosed backtick stays literal",
			in:   "a ` b",
			want: []Node{text("a ` b")},
		},
		{
			name: "empty code span stays literal",
			in:   "``",
			want: []Node{text("``")},
		},
		{
			name: "bracket without url stays literal",
			in:   "[not a link] (x)",
			want: []Node{text("[not a link] (x)")},
		},
		{
			name: "url with space stays literal",
			in:   "[a](b c)",
			want: []Node{text("[a](b c)")},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.inline(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inline(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
