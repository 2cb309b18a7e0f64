package content

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/stanjdev/folio/internal/adapters/fs"
)

// Loader reads definition files from a directory of a FileSystem.
type Loader struct {
	fs  fs.FileSystem
	dir string
}

func NewLoader(fsys fs.FileSystem, dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{fs: fsys, dir: dir}
}

// Load decodes one file relative to the loader's directory. A definition
// without a slug takes the file's base name.
func (l *Loader) Load(name string) (Definition, error) {
	p := path.Join(l.dir, name)
	data, err := l.fs.ReadFile(p)
	if err != nil {
		return Definition{}, fmt.Errorf("read %s: %w", p, err)
	}

	def, err := Decode(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", p, err)
	}
	def.Source = p
	if def.Meta.Slug == "" {
		def.Meta.Slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	return def, nil
}

// LoadAll decodes every .yaml and .yml file in the directory, sorted by name.
// The first failure stops the walk.
func (l *Loader) LoadAll() ([]Definition, error) {
	entries, err := l.fs.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", l.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		def, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[def.Meta.Slug]; ok {
			return nil, fmt.Errorf("duplicate slug %q in %s and %s", def.Meta.Slug, prev, def.Source)
		}
		seen[def.Meta.Slug] = def.Source
		defs = append(defs, def)
	}
	return defs, nil
}
