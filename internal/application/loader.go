package application

import (
	"context"
	"fmt"
	"log"
	"sort"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

// DefaultLanguage is the language of the source strings, used for the empty
// catalog when nothing else can be loaded.
const DefaultLanguage = "en"

// LoadOptions selects the catalog to load at startup.
type LoadOptions struct {
	// Path, when set, names a .ts file and bypasses language selection.
	Path            string
	Preference      string
	SystemLanguages []string
	// FromRepository loads from the catalog store instead of .ts files.
	FromRepository bool
}

// CatalogLoader resolves and loads catalogs from files or the repository.
type CatalogLoader struct {
	source output.CatalogSource
	repo   output.CatalogRepository
}

// NewCatalogLoader builds a loader; repo may be nil.
func NewCatalogLoader(source output.CatalogSource, repo output.CatalogRepository) *CatalogLoader {
	return &CatalogLoader{source: source, repo: repo}
}

// Available lists the languages a catalog can be loaded for.
func (l *CatalogLoader) Available(ctx context.Context, fromRepository bool) ([]string, error) {
	if !fromRepository {
		return l.source.Available()
	}
	if l.repo == nil {
		return nil, domain.ErrNoRepository
	}
	langs, err := l.repo.ListLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored languages: %w", err)
	}
	sort.Strings(langs)
	return langs, nil
}

// Load returns the catalog chosen by opts. When no catalog matches the
// preference it returns an empty catalog for DefaultLanguage.
func (l *CatalogLoader) Load(ctx context.Context, opts LoadOptions) (*entities.Catalog, error) {
	if opts.Path != "" {
		c, err := l.source.ReadFile(opts.Path)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Loaded translation: %s", opts.Path)
		return c, nil
	}

	available, err := l.Available(ctx, opts.FromRepository)
	if err != nil {
		return nil, err
	}
	lang, ok := SelectLanguage(opts.Preference, opts.SystemLanguages, available)
	if !ok {
		log.Println("ℹ️ Using default language (English)")
		return entities.NewEmptyCatalog(DefaultLanguage), nil
	}

	var c *entities.Catalog
	if opts.FromRepository {
		c, err = l.repo.FindByLanguage(ctx, lang)
	} else {
		c, err = l.source.Open(lang)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Loaded translation: %s", lang)
	return c, nil
}

// LoadOrEmpty is Load that never fails: errors are logged and an empty
// catalog is returned so that every lookup falls back to source text.
func (l *CatalogLoader) LoadOrEmpty(ctx context.Context, opts LoadOptions) *entities.Catalog {
	c, err := l.Load(ctx, opts)
	if err != nil {
		log.Printf("❌ i18n: %v; falling back to source text", err)
		return entities.NewEmptyCatalog(DefaultLanguage)
	}
	return c
}
