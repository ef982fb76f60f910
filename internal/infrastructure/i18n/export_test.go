package i18n

import (
	"bytes"
	"errors"
	"testing"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

func exportCatalog() *entities.Catalog {
	return entities.NewBuilder("2.1", "zh_CN").
		Add("ExamTab", entities.Entry{Source: "stop", Translation: "停止"}).
		Add("ResultWidget", entities.Entry{Source: "No valid channel files found: %1", Translation: "未找到有效的通道文件: %1"}).
		Add("DebugPreference", entities.Entry{Source: "MRD Files (*.mrd);;All Files (*.*)", Translation: "MRD文件 (*.mrd);;所有文件 (*.*)"}).
		Add("AppearancePreference", entities.Entry{Source: "Preview", Comment: "button", Translation: "预览"}).
		Add("AppearancePreference", entities.Entry{Source: "Apply Now"}).
		Add("AppearancePreference", entities.Entry{Source: "Old", Translation: "旧", Status: entities.StatusObsolete}).
		Build()
}

func TestMessageFileExportRoundTrip(t *testing.T) {
	for _, exp := range []*MessageFileExporter{NewTOMLExporter(), NewYAMLExporter(), NewJSONExporter()} {
		t.Run(exp.Format(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := exp.Export(&buf, exportCatalog()); err != nil {
				t.Fatalf("export: %v", err)
			}
			path := FileName("zh_CN", exp.Format())
			mf, err := ParseMessageFile(buf.Bytes(), path)
			if err != nil {
				t.Fatalf("parse: %v\n%s", err, buf.String())
			}
			if mf.Tag.String() != "zh-CN" {
				t.Fatalf("unexpected tag %s", mf.Tag)
			}

			got := map[string]string{}
			for _, m := range mf.Messages {
				got[m.ID] = m.Other
			}
			want := map[string]string{
				"ExamTab.stop": "停止",
				"ResultWidget.No valid channel files found: %1":      "未找到有效的通道文件: %1",
				"DebugPreference.MRD Files (*.mrd);;All Files (*.*)": "MRD文件 (*.mrd);;所有文件 (*.*)",
				"AppearancePreference.Preview#button":                "预览",
			}
			if len(got) != len(want) {
				t.Fatalf("expected %d messages, got %d: %v", len(want), len(got), got)
			}
			for id, other := range want {
				if got[id] != other {
					t.Fatalf("message %q = %q, want %q", id, got[id], other)
				}
			}
		})
	}
}

func TestMessageFileDescriptionKeepsSource(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTOMLExporter().Export(&buf, exportCatalog()); err != nil {
		t.Fatalf("export: %v", err)
	}
	mf, err := ParseMessageFile(buf.Bytes(), "zh-CN.toml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, m := range mf.Messages {
		if m.ID == "ExamTab.stop" && m.Description != "stop" {
			t.Fatalf("expected source as description, got %q", m.Description)
		}
	}
}

func TestMessageFileExportRejectsCollidingIDs(t *testing.T) {
	tests := map[string]*entities.Catalog{
		"dot in context": entities.NewBuilder("2.1", "zh_CN").
			Add("A", entities.Entry{Source: "b.c", Translation: "一"}).
			Add("A.b", entities.Entry{Source: "c", Translation: "二"}).
			Build(),
		"hash in source": entities.NewBuilder("2.1", "zh_CN").
			Add("A", entities.Entry{Source: "b#c", Translation: "一"}).
			Add("A", entities.Entry{Source: "b", Comment: "c", Translation: "二"}).
			Build(),
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewJSONExporter().Export(&buf, c)
			if !errors.Is(err, domain.ErrDuplicateMessageID) {
				t.Fatalf("expected ErrDuplicateMessageID, got %v", err)
			}
			if buf.Len() != 0 {
				t.Fatalf("nothing should be written on collision, got %q", buf.String())
			}
		})
	}
}

func TestMessageFileExportIgnoresUntranslatedCollisions(t *testing.T) {
	c := entities.NewBuilder("2.1", "zh_CN").
		Add("A", entities.Entry{Source: "b.c", Translation: "一"}).
		Add("A.b", entities.Entry{Source: "c"}).
		Build()
	var buf bytes.Buffer
	if err := NewJSONExporter().Export(&buf, c); err != nil {
		t.Fatalf("export: %v", err)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("zh_CN", "yaml"); got != "zh-CN.yaml" {
		t.Fatalf("unexpected file name %q", got)
	}
}
