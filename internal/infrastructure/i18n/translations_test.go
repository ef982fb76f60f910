package i18n

import (
	"strings"
	"testing"
)

func TestTranslatorLocales(t *testing.T) {
	tr := NewTranslator("en")

	en := tr.T("en", "cli.languages.none", nil)
	if en != "No catalog available." {
		t.Fatalf("unexpected english message %q", en)
	}
	zh := tr.T("zh-CN", "cli.languages.none", nil)
	if zh != "没有可用的翻译目录。" {
		t.Fatalf("unexpected chinese message %q", zh)
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("", "cli.import.done", map[string]any{"Language": "zh_CN", "Messages": 35})
	if got != "Imported the zh_CN catalog (35 messages)." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	tr := NewTranslator("not a locale")
	if got := tr.T("fr", "bot.contexts.empty", nil); got != "The catalog is empty." {
		t.Fatalf("expected default-locale fallback, got %q", got)
	}
	if got := tr.T("en", "no.such.key", nil); got != "no.such.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("expected empty message for empty key, got %q", got)
	}
}

func TestTranslatorCoversErrorCodes(t *testing.T) {
	tr := NewTranslator("en")
	for _, code := range []string{
		"malformed_catalog", "argument_mismatch", "placeholder_mismatch", "catalog_not_found",
		"context_not_found", "unsupported_format", "no_repository", "duplicate_message_id", "unknown",
	} {
		key := "errors." + code
		for _, locale := range []string{"en", "zh"} {
			if got := tr.T(locale, key, nil); got == key || strings.TrimSpace(got) == "" {
				t.Fatalf("missing %s message for %s", locale, key)
			}
		}
	}
	if len(tr.Languages()) != 2 {
		t.Fatalf("expected two bundle languages, got %v", tr.Languages())
	}
}
