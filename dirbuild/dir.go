// Package dirbuild loads configurations from files and directories.
package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/format"
)

// Dir is a directory of configuration sources, in the order they are
// layered: each source falls back to the ones before it.
type Dir struct {
	Root    string      `json:"-"`
	Sources []DirSource `json:"sources"`
}

type DirSource struct {
	Path   string        `json:"path"`
	Format format.Format `json:"format"`
}

func (s DirSource) String() string {
	return s.Path + " (" + s.Format.String() + ")"
}

type dirOpts struct {
	suffixes []string
	formats  []format.Format
}

type Option func(*dirOpts)

// Suffixes restricts a directory to files with one of the given
// extensions. Extensions without a known format are read as HOCON.
func Suffixes(s ...string) Option {
	return func(o *dirOpts) { o.suffixes = append(o.suffixes, s...) }
}

// Formats restricts a directory to files of the given formats.
func Formats(fs ...format.Format) Option {
	return func(o *dirOpts) { o.formats = append(o.formats, fs...) }
}

func (o *dirOpts) accept(path string) (format.Format, bool) {
	f, known := format.FromPath(path)
	if len(o.suffixes) != 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(o.suffixes, ext) {
			return 0, false
		}
		if !known {
			f, known = format.HOCONFormat, true
		}
	}
	if !known {
		return 0, false
	}
	if len(o.formats) != 0 && !slices.Contains(o.formats, f) {
		return 0, false
	}
	return f, true
}

// OpenDir lists the sources of a directory in lexical order. Sub
// directories and files of unaccepted type are skipped.
func OpenDir(path string, opts ...Option) (*Dir, error) {
	o := &dirOpts{}
	for _, opt := range opts {
		opt(o)
	}
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not read dir %q: %w", path, err)
	}
	dir := &Dir{Root: path}
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		f, ok := o.accept(ent.Name())
		if !ok {
			continue
		}
		dir.Sources = append(dir.Sources, DirSource{
			Path:   filepath.Join(path, ent.Name()),
			Format: f,
		})
	}
	if debug.Load() {
		debug.Logf("dir %s sources %v\n", path, dir.Sources)
	}
	return dir, nil
}

// Build loads every source and layers them so that later sources win. A
// directory without sources builds to nil.
func (d *Dir) Build() (*hocon.Config, error) {
	var acc *hocon.Config
	for _, src := range d.Sources {
		next, err := LoadAs(src.Path, src.Format)
		if err != nil {
			return nil, err
		}
		if next == nil {
			continue
		}
		if acc != nil {
			if next, err = next.WithFallback(acc); err != nil {
				return nil, fmt.Errorf("could not layer %s: %w", src.Path, err)
			}
		}
		acc = next
	}
	return acc, nil
}

func LoadDir(path string, opts ...Option) (*hocon.Config, error) {
	dir, err := OpenDir(path, opts...)
	if err != nil {
		return nil, err
	}
	return dir.Build()
}
