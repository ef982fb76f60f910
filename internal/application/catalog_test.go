package application

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

func TestTranslate(t *testing.T) {
	svc := NewCatalogService(consoleCatalog(), nil)

	tests := []struct {
		name    string
		context string
		source  string
		args    []any
		want    string
	}{
		{"translated", "ExamTab", "stop", nil, "停止"},
		{"formatted", "ResultWidget", "No valid channel files found: %1", []any{"ch3.dat"}, "未找到有效的通道文件: ch3.dat"},
		{"integer argument", "mainwindow", "Application exited with code: %1", []any{0}, "应用程序退出，返回码：0"},
		{"missing falls back to source", "ExamTab", "unknown", nil, "unknown"},
		{"missing source still formatted", "ExamTab", "Scan %1 done", []any{3}, "Scan 3 done"},
		{"mismatch falls back to unformatted source", "ResultWidget", "No valid channel files found: %1", nil, "No valid channel files found: %1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Translate(tt.context, tt.source, tt.args...); got != tt.want {
				t.Fatalf("translate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateLocalizedMarkerFollowsCatalogLanguage(t *testing.T) {
	de := entities.NewBuilder("2.1", "de_DE").
		Add("ScoutWidget", entities.Entry{Source: "%L1 slices", Translation: "%L1 Schichten"}).
		Build()
	if got := NewCatalogService(de, nil).Translate("ScoutWidget", "%L1 slices", 12000); got != "12.000 Schichten" {
		t.Fatalf("de_DE translate = %q", got)
	}
	if got := NewCatalogService(entities.NewEmptyCatalog(DefaultLanguage), nil).Translate("ScoutWidget", "%L1 slices", 12000); got != "12,000 slices" {
		t.Fatalf("en translate = %q", got)
	}
}

func TestLookup(t *testing.T) {
	svc := NewCatalogService(consoleCatalog(), nil)
	if got, ok := svc.Lookup("ExamTab", "stop"); !ok || got != "停止" {
		t.Fatalf("lookup = %q, %v", got, ok)
	}
	if _, ok := svc.Lookup("ExamTab", "unknown"); ok {
		t.Fatal("expected not found")
	}
	if svc.Language() != "zh_CN" {
		t.Fatalf("unexpected language %q", svc.Language())
	}
}

func TestContexts(t *testing.T) {
	c := entities.NewBuilder("2.1", "zh_CN").
		Add("ExamTab", entities.Entry{Source: "stop", Translation: "停止"}).
		Add("ExamTab", entities.Entry{Source: "start"}).
		Add("ExamTab", entities.Entry{Source: "old", Translation: "旧", Status: entities.StatusVanished}).
		Build()
	svc := NewCatalogService(c, nil)

	sums := svc.Contexts()
	if len(sums) != 1 {
		t.Fatalf("expected one context, got %d", len(sums))
	}
	if sums[0].Messages != 2 || sums[0].Translated != 1 {
		t.Fatalf("unexpected summary %+v", sums[0])
	}
	if _, err := svc.Context("ExamTab"); err != nil {
		t.Fatalf("context: %v", err)
	}
	if _, err := svc.Context("Nope"); !errors.Is(err, domain.ErrContextNotFound) {
		t.Fatalf("expected ErrContextNotFound, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	c := entities.NewBuilder("2.1", "zh_CN").
		Add("ResultWidget", entities.Entry{Source: "No valid channel files found: %1", Translation: "未找到有效的通道文件"}).
		Add("ResultWidget", entities.Entry{Source: "Loading Error", Translation: "加载错误"}).
		Add("ResultWidget", entities.Entry{Source: "Loading Error", Translation: "载入错误"}).
		Add("ExamTab", entities.Entry{Source: "stop", Translation: "停止", Status: entities.StatusUnfinished}).
		Add("ExamTab", entities.Entry{Source: "start"}).
		Add("ExamTab", entities.Entry{Source: "pause", Translation: "暂停", Status: entities.StatusObsolete}).
		Build()
	r := NewCatalogService(c, nil).Check()

	if r.Contexts != 2 || r.Messages != 4 || r.Translated != 3 {
		t.Fatalf("unexpected totals %+v", r)
	}
	for kind, want := range map[entities.IssueKind]int{
		entities.IssuePlaceholderMismatch: 1,
		entities.IssueDuplicate:           1,
		entities.IssueUnfinished:          1,
		entities.IssueUntranslated:        1,
		entities.IssueObsolete:            1,
	} {
		if got := r.Count(kind); got != want {
			t.Fatalf("%s: got %d issues, want %d", kind, got, want)
		}
	}
	if r.OK() {
		t.Fatal("expected blocking issues")
	}
	if len(r.Blocking()) != 2 {
		t.Fatalf("expected 2 blocking issues, got %d", len(r.Blocking()))
	}
}

func TestCheckCleanCatalog(t *testing.T) {
	r := NewCatalogService(consoleCatalog(), nil).Check()
	if !r.OK() || len(r.Issues) != 0 {
		t.Fatalf("expected clean report, got %+v", r.Issues)
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	if err := NewCatalogService(consoleCatalog(), nil).Import(ctx); !errors.Is(err, domain.ErrNoRepository) {
		t.Fatalf("expected ErrNoRepository, got %v", err)
	}

	repo := newFakeRepo()
	if err := NewCatalogService(consoleCatalog(), repo).Import(ctx); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, ok := repo.saved["zh_CN"]; !ok {
		t.Fatal("expected catalog saved under its language")
	}

	repo.saveErr = errors.New("disk full")
	if err := NewCatalogService(consoleCatalog(), repo).Import(ctx); err == nil {
		t.Fatal("expected save error")
	}
}

func TestExport(t *testing.T) {
	svc := NewCatalogService(consoleCatalog(), nil, fakeExporter{"toml"}, fakeExporter{"ts"})

	var buf bytes.Buffer
	if err := svc.Export(&buf, "toml"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if buf.String() != "toml:zh_CN:4" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := svc.Export(&buf, "xliff"); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if f := svc.Formats(); len(f) != 2 || f[0] != "toml" || f[1] != "ts" {
		t.Fatalf("unexpected formats %v", f)
	}
}
