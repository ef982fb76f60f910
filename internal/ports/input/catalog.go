package input

import (
	"context"
	"io"

	"tscat/internal/domain/entities"
)

type CatalogUseCase interface {
	Language() string
	Lookup(contextName, source string) (string, bool)
	LookupDisambiguated(contextName, source, comment string) (string, bool)
	Translate(contextName, source string, args ...any) string
	Contexts() []entities.ContextSummary
	Context(name string) (*entities.Context, error)
	Check() entities.Report
	Import(ctx context.Context) error
	Export(w io.Writer, format string) error
	Formats() []string
}
