package application

import (
	"context"
	"fmt"
	"io"
	"sort"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

type fakeSource struct {
	catalogs map[string]*entities.Catalog
	files    map[string]*entities.Catalog
}

func (f *fakeSource) Available() ([]string, error) {
	out := make([]string, 0, len(f.catalogs))
	for lang := range f.catalogs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeSource) Open(language string) (*entities.Catalog, error) {
	c, ok := f.catalogs[language]
	if !ok {
		return nil, fmt.Errorf("%s: %w", language, domain.ErrCatalogNotFound)
	}
	return c, nil
}

func (f *fakeSource) ReadFile(path string) (*entities.Catalog, error) {
	c, ok := f.files[path]
	if !ok {
		return nil, &domain.ParseError{Source: path, Err: io.ErrUnexpectedEOF}
	}
	return c, nil
}

type fakeRepo struct {
	saved   map[string]*entities.Catalog
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: map[string]*entities.Catalog{}}
}

func (r *fakeRepo) Save(_ context.Context, c *entities.Catalog) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[c.Language()] = c
	return nil
}

func (r *fakeRepo) FindByLanguage(_ context.Context, language string) (*entities.Catalog, error) {
	c, ok := r.saved[language]
	if !ok {
		return nil, domain.ErrCatalogNotFound
	}
	return c, nil
}

func (r *fakeRepo) ListLanguages(context.Context) ([]string, error) {
	out := []string{}
	for lang := range r.saved {
		out = append(out, lang)
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, language string) error {
	delete(r.saved, language)
	return nil
}

type fakeExporter struct{ format string }

func (e fakeExporter) Format() string { return e.format }

func (e fakeExporter) Export(w io.Writer, c *entities.Catalog) error {
	_, err := fmt.Fprintf(w, "%s:%s:%d", e.format, c.Language(), c.Len())
	return err
}

func consoleCatalog() *entities.Catalog {
	return entities.NewBuilder("2.1", "zh_CN").
		Add("ExamTab", entities.Entry{Source: "stop", Translation: "停止"}).
		Add("ExamTab", entities.Entry{Source: "start", Translation: "开始"}).
		Add("ResultWidget", entities.Entry{Source: "No valid channel files found: %1", Translation: "未找到有效的通道文件: %1"}).
		Add("mainwindow", entities.Entry{Source: "Application exited with code: %1", Translation: "应用程序退出，返回码：%1"}).
		Build()
}
