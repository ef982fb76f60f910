package discord

import (
	"github.com/bwmarrin/discordgo"
)

// HandleModalSubmit routes submitted modals by CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case modalTr:
		h.handleTrModalSubmit(s, i, data)
	default:
		// Unknown modal: ignore.
	}
}
