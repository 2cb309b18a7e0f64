// Package content ships the case-study definitions compiled into the binary.
package content

import "embed"

// Dir is the directory inside FS holding one YAML definition per page.
const Dir = "projects"

//go:embed projects/*.yaml
var FS embed.FS
