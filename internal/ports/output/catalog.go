package output

import (
	"context"
	"io"

	"tscat/internal/domain/entities"
)

// CatalogSource locates and decodes catalog files.
type CatalogSource interface {
	// Available lists the languages a catalog exists for.
	Available() ([]string, error)
	// Open decodes the catalog for language.
	Open(language string) (*entities.Catalog, error)
	// ReadFile decodes the catalog stored at path.
	ReadFile(path string) (*entities.Catalog, error)
}

// CatalogRepository persists catalogs, one per language.
type CatalogRepository interface {
	Save(ctx context.Context, catalog *entities.Catalog) error
	FindByLanguage(ctx context.Context, language string) (*entities.Catalog, error)
	ListLanguages(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, language string) error
}

// CatalogExporter serializes a catalog in one file format.
type CatalogExporter interface {
	Format() string
	Export(w io.Writer, catalog *entities.Catalog) error
}
