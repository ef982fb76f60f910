package discord

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/ports/output"
)

const (
	pagePrefix = "ctx_page:"

	// Discord caps component custom IDs at 100 characters.
	maxCustomID = 100
)

func pageCustomID(name string, page int) string {
	return pagePrefix + strconv.Itoa(page) + ":" + name
}

// parsePageCustomID splits a page button ID into context name and 0-based page.
func parsePageCustomID(customID string) (name string, page int, ok bool) {
	rest, ok := strings.CutPrefix(customID, pagePrefix)
	if !ok {
		return "", 0, false
	}
	pageStr, name, ok := strings.Cut(rest, ":")
	if !ok {
		return "", 0, false
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		return "", 0, false
	}
	return name, page, true
}

// pageButtons returns the previous/next row, or false when the context has a
// single page or its name does not fit in a custom ID.
func pageButtons(t output.T, loc, name string, page, pages int) (discordgo.ActionsRow, bool) {
	if pages <= 1 || len(pageCustomID(name, pages)) > maxCustomID {
		return discordgo.ActionsRow{}, false
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    t.T(loc, "bot.page.prev", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: pageCustomID(name, page-1),
			Disabled: page == 0,
		},
		discordgo.Button{
			Label:    t.T(loc, "bot.page.next", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: pageCustomID(name, page+1),
			Disabled: page >= pages-1,
		},
	}}, true
}

// HandlePage replaces the context embed with the requested page.
func (h *Handler) HandlePage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name, page, ok := parsePageCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	embed, components, err := h.contextPage(locale(i), name, page)
	if err != nil {
		respondError(s, i.Interaction, h.t, locale(i), err)
		return
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
