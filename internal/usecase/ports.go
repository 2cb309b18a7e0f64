package usecase

import (
	"io"

	"github.com/a-h/templ"

	"github.com/stanjdev/folio/internal/adapters/fs"
	"github.com/stanjdev/folio/internal/core"
)

// LayoutShell wraps rendered page content in the site chrome. The page title
// and description arrive as arguments.
type LayoutShell interface {
	Wrap(meta core.Metadata, content templ.Component) templ.Component
}

// DocumentSource yields a freshly assembled Document on every call.
type DocumentSource interface {
	Document() (core.Document, error)
}

type TextRenderer interface {
	Render(tree core.OutputTree) []byte
}

// CLIOutput prints run headers and supplies the colors and writer for a
// cli.Report.
type CLIOutput interface {
	PrintHeader(msg string)
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
}

type FileSystem = fs.FileSystem
