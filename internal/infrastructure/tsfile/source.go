package tsfile

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogSource = (*Source)(nil)

// Source finds <prefix>_<language>.ts catalogs across ordered file system
// layers. The first layer holding a language wins.
type Source struct {
	prefix string
	layers []fs.FS
}

func NewSource(prefix string, layers ...fs.FS) *Source {
	return &Source{prefix: prefix, layers: layers}
}

// FileName returns the catalog file name used for language (e.g. mrscan2_zh_CN.ts).
func (s *Source) FileName(language string) string {
	return s.prefix + "_" + NormalizeLanguage(language) + ".ts"
}

// Available lists the languages for which a catalog exists, sorted.
func (s *Source) Available() ([]string, error) {
	seen := map[string]bool{}
	for _, layer := range s.layers {
		matches, err := fs.Glob(layer, s.prefix+"_*.ts")
		if err != nil {
			return nil, fmt.Errorf("glob catalogs: %w", err)
		}
		for _, m := range matches {
			lang := strings.TrimSuffix(strings.TrimPrefix(m, s.prefix+"_"), ".ts")
			if lang != "" {
				seen[lang] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out, nil
}

// Open decodes the catalog for language from the first layer that has it.
func (s *Source) Open(language string) (*entities.Catalog, error) {
	name := s.FileName(language)
	for _, layer := range s.layers {
		f, err := layer.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		c, err := Decode(f, name)
		f.Close()
		return c, err
	}
	return nil, fmt.Errorf("%s: %w", name, domain.ErrCatalogNotFound)
}

// ReadFile decodes a catalog from an explicit path on disk.
func (s *Source) ReadFile(path string) (*entities.Catalog, error) {
	return ReadFile(path)
}

// NormalizeLanguage turns a BCP 47 tag into the underscore form used by Qt
// file names and TS headers ("zh-CN" -> "zh_CN").
func NormalizeLanguage(language string) string {
	return strings.ReplaceAll(strings.TrimSpace(language), "-", "_")
}
