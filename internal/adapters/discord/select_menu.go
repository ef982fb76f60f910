package discord

import (
	"github.com/bwmarrin/discordgo"

	"tscat/internal/domain/entities"
	pkgdiscord "tscat/pkg/discord"
)

// HandleContextSelect shows the first page of the picked context.
func (h *Handler) HandleContextSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}

	embed, components, err := h.contextPage(locale(i), data.Values[0], 0)
	if err != nil {
		respondError(s, i.Interaction, h.t, locale(i), err)
		return
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// contextPage builds the embed and navigation buttons for one page of a context.
func (h *Handler) contextPage(loc, name string, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	cx, err := h.catalog.Context(name)
	if err != nil {
		return nil, nil, err
	}

	var active []entities.Entry
	translated := 0
	for _, e := range cx.Entries() {
		if !e.Status.Active() {
			continue
		}
		if e.Translated() {
			translated++
		}
		active = append(active, e)
	}

	shown, page := pkgdiscord.Page(active, page)
	pages := pkgdiscord.Pages(len(active))
	footer := h.t.T(loc, "bot.embed.footer", footerData(h.catalog.Language(), translated, len(active)))
	if pages > 1 {
		footer += " · " + h.t.T(loc, "bot.embed.page", map[string]any{"Page": page + 1, "Pages": pages})
	}
	embed := pkgdiscord.BuildContextEmbed(h.t.T(loc, "bot.embed.title", map[string]any{"Context": name}), footer, shown)

	row, ok := pageButtons(h.t, loc, name, page, pages)
	if !ok {
		return embed, nil, nil
	}
	return embed, []discordgo.MessageComponent{row}, nil
}
