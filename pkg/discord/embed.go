package discord

import (
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/domain/entities"
)

const (
	embedColor = 0x5865F2

	// PageSize is the number of entries shown per context page.
	PageSize = 15

	maxFieldName  = 256
	maxFieldValue = 1024
	maxFooter     = 2048
)

// Pages returns how many pages n entries span. An empty context still has one page.
func Pages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Page returns the entries of the given 0-based page, clamping page into range.
func Page(entries []entities.Entry, page int) ([]entities.Entry, int) {
	last := Pages(len(entries)) - 1
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	start := page * PageSize
	end := min(start+PageSize, len(entries))
	return entries[start:end], page
}

// BuildContextEmbed renders entries as one field per source text.
func BuildContextEmbed(title, footer string, entries []entities.Entry) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(entries))
	for _, e := range entries {
		name := e.Source
		if e.Comment != "" {
			name += " (" + e.Comment + ")"
		}
		if e.Status == entities.StatusUnfinished {
			name = "✏️ " + name
		}
		if name == "" {
			name = "\u200b"
		}
		value := e.Translation
		if value == "" {
			value = "—"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  Truncate(name, maxFieldName),
			Value: Truncate(value, maxFieldValue),
		})
	}
	return &discordgo.MessageEmbed{
		Title:  Truncate(title, maxFieldName),
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: Truncate(footer, maxFooter)},
	}
}

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
