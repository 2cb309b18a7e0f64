package html

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/stanjdev/folio/internal/core"
)

// Shell is the site chrome around every page: document head, navigation and
// footer. The page body is passed as templ children.
type Shell struct {
	SiteName   string
	Lang       string
	Stylesheet string
	Nav        []core.Link
}

func NewShell(siteName, lang, stylesheet string) *Shell {
	return &Shell{
		SiteName:   siteName,
		Lang:       lang,
		Stylesheet: stylesheet,
		Nav: []core.Link{
			{Label: "Home", URL: "/"},
			{Label: "Projects", URL: "/projects"},
		},
	}
}

// ComposePageTitle appends the site name unless the title already ends with it.
func ComposePageTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	siteName = strings.TrimSpace(siteName)
	switch {
	case siteName == "":
		return title
	case title == "":
		return siteName
	case strings.HasSuffix(title, " | "+siteName):
		return title
	}
	return title + " | " + siteName
}

func (s *Shell) Wrap(meta core.Metadata, content templ.Component) templ.Component {
	if content == nil {
		content = templ.NopComponent
	}
	layout := s.layout(meta)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout.Render(templ.WithChildren(ctx, content), w)
	})
}

func (s *Shell) layout(meta core.Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := s.Lang
		if lang == "" {
			lang = "en"
		}

		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"" + templ.EscapeString(lang) + "\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<title>" + templ.EscapeString(ComposePageTitle(meta.Title, s.SiteName)) + "</title>\n")
		if meta.Description != "" {
			b.WriteString("<meta name=\"description\" content=\"" + templ.EscapeString(meta.Description) + "\">\n")
		}
		if s.Stylesheet != "" {
			b.WriteString("<link rel=\"stylesheet\" href=\"" + templ.EscapeString(s.Stylesheet) + "\">\n")
		}
		b.WriteString("</head>\n<body>\n")
		if len(s.Nav) > 0 {
			b.WriteString("<nav class=\"navbar\">")
			for _, l := range s.Nav {
				b.WriteString("<a class=\"navbar__link\" href=\"" + templ.EscapeString(l.URL) + "\">" + templ.EscapeString(l.Label) + "</a>")
			}
			b.WriteString("</nav>\n")
		}
		b.WriteString("<main class=\"caseStudy\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := children.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</main>\n")
		if s.SiteName != "" {
			b.WriteString("<footer class=\"footer\">" + templ.EscapeString(s.SiteName) + "</footer>\n")
		}
		b.WriteString("</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
