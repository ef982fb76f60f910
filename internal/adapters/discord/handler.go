package discord

import (
	"github.com/bwmarrin/discordgo"

	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

// Handler handles Discord interactions using the catalog use cases.
type Handler struct {
	catalog input.CatalogUseCase
	t       output.T
}

// NewHandler creates a Handler.
func NewHandler(catalog input.CatalogUseCase, t output.T) *Handler {
	return &Handler{
		catalog: catalog,
		t:       t,
	}
}

// locale is the language of the user who triggered the interaction.
func locale(i *discordgo.InteractionCreate) string {
	if i.Locale != "" {
		return string(i.Locale)
	}
	if i.GuildLocale != nil {
		return string(*i.GuildLocale)
	}
	return ""
}
