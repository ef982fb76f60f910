package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/application"
	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	pkgdiscord "tscat/pkg/discord"
)

// echoTranslator renders a key followed by its sorted template data.
type echoTranslator struct{}

func (echoTranslator) T(locale, key string, data map[string]any) string {
	var b strings.Builder
	b.WriteString(key)
	for _, k := range []string{"Context", "Source", "Translation", "Page", "Pages"} {
		if v, ok := data[k]; ok {
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
	}
	return b.String()
}

func newTestHandler(extra int) *Handler {
	b := entities.NewBuilder("2.1", "zh_CN").
		Add("ExamTab", entities.Entry{Source: "stop", Translation: "停止"}).
		Add("ExamTab", entities.Entry{Source: "Old", Translation: "旧", Status: entities.StatusObsolete}).
		Add("ResultWidget", entities.Entry{Source: "No valid channel files found: %1", Translation: "未找到有效的通道文件: %1"})
	for n := 0; n < extra; n++ {
		b.Add("Long", entities.Entry{Source: fmt.Sprintf("s%d", n), Translation: fmt.Sprintf("t%d", n)})
	}
	return NewHandler(application.NewCatalogService(b.Build(), nil), echoTranslator{})
}

func TestTrReply(t *testing.T) {
	h := newTestHandler(0)

	tests := []struct {
		context, source, args, want string
	}{
		{"ExamTab", "stop", "", "bot.tr.result Context=ExamTab Source=stop Translation=停止"},
		{"ResultWidget", "No valid channel files found: %1", "ch3.dat", "bot.tr.result Context=ResultWidget Source=No valid channel files found: %1 Translation=未找到有效的通道文件: ch3.dat"},
		{"ResultWidget", "No valid channel files found: %1", "", "bot.tr.result Context=ResultWidget Source=No valid channel files found: %1 Translation=No valid channel files found: %1"},
		{"ExamTab", "unknown", "", "bot.tr.missing Source=unknown"},
		{"ExamTab", "Old", "", "bot.tr.missing Source=Old"},
	}
	for _, tt := range tests {
		if got := h.trReply("en", tt.context, tt.source, tt.args); got != tt.want {
			t.Fatalf("trReply(%q, %q, %q) = %q, want %q", tt.context, tt.source, tt.args, got, tt.want)
		}
	}
}

func TestPageCustomIDRoundTrip(t *testing.T) {
	id := pageCustomID("Main:Window", 3)
	name, page, ok := parsePageCustomID(id)
	if !ok || name != "Main:Window" || page != 3 {
		t.Fatalf("parse(%q) = %q, %d, %v", id, name, page, ok)
	}
	for _, bad := range []string{"select_context", "ctx_page:x:ExamTab", "ctx_page:-1:ExamTab", "ctx_page:2"} {
		if _, _, ok := parsePageCustomID(bad); ok {
			t.Fatalf("parse(%q) accepted", bad)
		}
	}
}

func TestContextPage(t *testing.T) {
	h := newTestHandler(pkgdiscord.PageSize + 2)

	embed, components, err := h.contextPage("en", "ExamTab", 0)
	if err != nil {
		t.Fatalf("contextPage: %v", err)
	}
	if len(embed.Fields) != 1 || embed.Fields[0].Name != "stop" {
		t.Fatalf("ExamTab fields = %+v", embed.Fields)
	}
	if components != nil {
		t.Fatal("single page context must not have buttons")
	}

	embed, components, err = h.contextPage("en", "Long", 5)
	if err != nil {
		t.Fatalf("contextPage: %v", err)
	}
	if len(embed.Fields) != 2 || !strings.Contains(embed.Footer.Text, "Page=2 Pages=2") {
		t.Fatalf("last page = %d fields, footer %q", len(embed.Fields), embed.Footer.Text)
	}
	row := components[0].(discordgo.ActionsRow)
	prev, next := row.Components[0].(discordgo.Button), row.Components[1].(discordgo.Button)
	if prev.Disabled || !next.Disabled || prev.CustomID != pageCustomID("Long", 0) {
		t.Fatalf("buttons = %+v %+v", prev, next)
	}

	_, _, err = h.contextPage("en", "Nope", 0)
	if !errors.Is(err, domain.ErrContextNotFound) {
		t.Fatalf("unknown context err = %v", err)
	}
}

func TestPageButtonsSkipLongNames(t *testing.T) {
	if _, ok := pageButtons(echoTranslator{}, "en", strings.Repeat("x", 95), 0, 2); ok {
		t.Fatal("expected no buttons for an oversized custom ID")
	}
}

func TestContextOptionsSkipLongNames(t *testing.T) {
	h := newTestHandler(0)
	fits := strings.Repeat("界", maxOptionValue)
	summaries := []entities.ContextSummary{
		{Name: "ExamTab", Messages: 1, Translated: 1},
		{Name: strings.Repeat("x", maxOptionValue+1), Messages: 1},
		{Name: fits, Messages: 2, Translated: 1},
	}

	opts := h.contextOptions("en", summaries)
	if len(opts) != 2 {
		t.Fatalf("got %d options, want 2", len(opts))
	}
	if opts[0].Value != "ExamTab" || opts[1].Value != fits {
		t.Fatalf("values = %q, %q", opts[0].Value, opts[1].Value)
	}
	if _, _, err := h.contextPage("en", opts[0].Value, 0); err != nil {
		t.Fatalf("option value does not open its context: %v", err)
	}
}

func TestContextOptionsCap(t *testing.T) {
	summaries := make([]entities.ContextSummary, maxSelectOptions+5)
	for n := range summaries {
		summaries[n] = entities.ContextSummary{Name: fmt.Sprintf("C%d", n)}
	}
	if got := len(newTestHandler(0).contextOptions("en", summaries)); got != maxSelectOptions {
		t.Fatalf("got %d options, want %d", got, maxSelectOptions)
	}
}

func TestCommands(t *testing.T) {
	cmds := Commands(echoTranslator{})
	if len(cmds) != 2 || cmds[0].Name != commandTr || cmds[1].Name != commandContexts {
		t.Fatalf("commands = %+v", cmds)
	}
	if len(cmds[0].Options) != 3 || cmds[0].Options[0].Required {
		t.Fatalf("tr options = %+v", cmds[0].Options)
	}
	if (*cmds[1].DescriptionLocalizations)[discordgo.ChineseCN] != "bot.cmd.contexts" {
		t.Fatalf("localizations = %v", *cmds[1].DescriptionLocalizations)
	}
}

func TestLocale(t *testing.T) {
	guild := discordgo.ChineseCN
	tests := []struct {
		i    *discordgo.Interaction
		want string
	}{
		{&discordgo.Interaction{Locale: discordgo.EnglishUS}, "en-US"},
		{&discordgo.Interaction{GuildLocale: &guild}, "zh-CN"},
		{&discordgo.Interaction{}, ""},
	}
	for _, tt := range tests {
		if got := locale(&discordgo.InteractionCreate{Interaction: tt.i}); got != tt.want {
			t.Fatalf("locale = %q, want %q", got, tt.want)
		}
	}
}
