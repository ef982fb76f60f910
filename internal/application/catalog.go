package application

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"

	"golang.org/x/text/language"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

// CatalogService serves lookups from one immutable catalog.
type CatalogService struct {
	catalog   *entities.Catalog
	locale    language.Tag
	repo      output.CatalogRepository
	exporters map[string]output.CatalogExporter
}

// NewCatalogService wires the catalog with an optional repository (may be nil)
// and the exporters available to Export.
func NewCatalogService(
	catalog *entities.Catalog,
	repo output.CatalogRepository,
	exporters ...output.CatalogExporter,
) *CatalogService {
	byFormat := make(map[string]output.CatalogExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	locale, err := parseTag(catalog.Language())
	if err != nil {
		locale = language.English
	}
	return &CatalogService{
		catalog:   catalog,
		locale:    locale,
		repo:      repo,
		exporters: byFormat,
	}
}

func (s *CatalogService) Catalog() *entities.Catalog { return s.catalog }

func (s *CatalogService) Language() string { return s.catalog.Language() }

func (s *CatalogService) Lookup(contextName, source string) (string, bool) {
	return s.catalog.Lookup(contextName, source)
}

func (s *CatalogService) LookupDisambiguated(contextName, source, comment string) (string, bool) {
	return s.catalog.LookupDisambiguated(contextName, source, comment)
}

// Translate returns the formatted translation of source. A missing
// translation falls back to source; a placeholder/argument mismatch falls
// back to the unformatted source text. %LN markers follow the catalog language.
func (s *CatalogService) Translate(contextName, source string, args ...any) string {
	text, ok := s.catalog.Lookup(contextName, source)
	if !ok {
		text = source
	}
	out, err := domain.FormatIn(s.locale, text, args...)
	if err != nil {
		log.Printf("⚠️ i18n: format %s/%q: %v", contextName, source, err)
		return source
	}
	return out
}

func (s *CatalogService) Contexts() []entities.ContextSummary {
	ctxs := s.catalog.Contexts()
	out := make([]entities.ContextSummary, 0, len(ctxs))
	for _, c := range ctxs {
		sum := entities.ContextSummary{Name: c.Name()}
		for _, e := range c.Entries() {
			if !e.Status.Active() {
				continue
			}
			sum.Messages++
			if e.Translated() {
				sum.Translated++
			}
		}
		out = append(out, sum)
	}
	return out
}

func (s *CatalogService) Context(name string) (*entities.Context, error) {
	c, ok := s.catalog.Context(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrContextNotFound)
	}
	return c, nil
}

// Check validates the catalog: placeholder parity of translated entries,
// duplicates, and entries that are unfinished, untranslated or obsolete.
func (s *CatalogService) Check() entities.Report {
	r := entities.Report{Language: s.catalog.Language()}
	for _, c := range s.catalog.Contexts() {
		r.Contexts++
		for _, e := range c.Entries() {
			issue := entities.Issue{Context: c.Name(), Source: e.Source, Comment: e.Comment}
			if !e.Status.Active() {
				issue.Kind = entities.IssueObsolete
				r.Issues = append(r.Issues, issue)
				continue
			}
			r.Messages++
			switch {
			case e.Translation == "":
				issue.Kind = entities.IssueUntranslated
				r.Issues = append(r.Issues, issue)
				continue
			case e.Status == entities.StatusUnfinished:
				issue.Kind = entities.IssueUnfinished
				r.Issues = append(r.Issues, issue)
			}
			r.Translated++
			if err := domain.CheckPlaceholders(e.Source, e.Translation); err != nil {
				r.Issues = append(r.Issues, entities.Issue{
					Kind:    entities.IssuePlaceholderMismatch,
					Context: c.Name(),
					Source:  e.Source,
					Comment: e.Comment,
					Detail:  err.Error(),
				})
			}
		}
	}
	for _, d := range s.catalog.Duplicates() {
		r.Issues = append(r.Issues, entities.Issue{
			Kind:    entities.IssueDuplicate,
			Context: d.Context,
			Source:  d.Source,
			Comment: d.Comment,
			Detail:  fmt.Sprintf("%q replaced by %q", d.Previous, d.Translation),
		})
	}
	return r
}

// Import stores the catalog in the repository, replacing any catalog of the same language.
func (s *CatalogService) Import(ctx context.Context) error {
	if s.repo == nil {
		return domain.ErrNoRepository
	}
	if err := s.repo.Save(ctx, s.catalog); err != nil {
		return fmt.Errorf("import catalog %s: %w", s.catalog.Language(), err)
	}
	return nil
}

func (s *CatalogService) Export(w io.Writer, format string) error {
	e, ok := s.exporters[format]
	if !ok {
		return fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}
	return e.Export(w, s.catalog)
}

// Formats lists the export formats, sorted.
func (s *CatalogService) Formats() []string {
	out := make([]string, 0, len(s.exporters))
	for f := range s.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
