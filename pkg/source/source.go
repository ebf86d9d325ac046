package source

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/matzehuels/stackdeck/pkg/errors"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Source is a loaded deck definition together with the bytes it was parsed
// from. The bytes are used for cache keys.
type Source struct {
	Name    string
	Path    string // empty for built-in decks
	Builtin bool
	Format  Format
	Data    []byte
	Def     *Definition
}

// Open resolves ref as a file path first and as a built-in deck name
// second.
func Open(ref string) (*Source, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	if src, err := Builtin(ref); err == nil {
		return src, nil
	}
	return nil, errors.New(errors.ErrCodeDeckNotFound, "no deck file or built-in deck named %q (built-ins: %s)", ref, strings.Join(Builtins(), ", "))
}

// LoadFile reads and parses a deck file.
func LoadFile(p string) (*Source, error) {
	format, err := FormatFor(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", p)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", p)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "%s", p)
	}
	return &Source{Name: def.Name, Path: p, Format: format, Data: data, Def: def}, nil
}

// Builtin returns an embedded deck by name.
func Builtin(name string) (*Source, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDeckNotFound, err, "built-in deck %q", name)
	}
	def, err := Parse(data, FormatTOML)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "built-in deck %q", name)
	}
	return &Source{Name: def.Name, Builtin: true, Format: FormatTOML, Data: data, Def: def}, nil
}

// Builtins returns the names of the embedded decks, sorted.
func Builtins() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Reload reads a file-backed source again. Built-in sources are returned
// unchanged.
func (s *Source) Reload() (*Source, error) {
	if s.Builtin {
		return s, nil
	}
	return LoadFile(s.Path)
}
