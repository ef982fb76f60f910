package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "tscat/pkg/discord"
)

// openTrModal asks for the lookup fields, pre-filled with what the command already had.
func (h *Handler) openTrModal(s *discordgo.Session, i *discordgo.InteractionCreate, contextName, source string) {
	loc := locale(i)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalTr,
			Title:    pkgdiscord.Truncate(h.t.T(loc, "bot.modal.title", nil), 45),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: pkgdiscord.InputContext, Label: h.t.T(loc, "bot.modal.context", nil), Style: discordgo.TextInputShort, Required: true, Value: contextName, Placeholder: "ExamTab"},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: pkgdiscord.InputSource, Label: h.t.T(loc, "bot.modal.source", nil), Style: discordgo.TextInputParagraph, Required: true, Value: source},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: pkgdiscord.InputArgs, Label: h.t.T(loc, "bot.modal.args", nil), Style: discordgo.TextInputShort, Required: false},
				}},
			},
		},
	})
}

func (h *Handler) handleTrModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	contextName, source, args := pkgdiscord.ExtractModalData(data)
	respondEphemeral(s, i.Interaction, h.trReply(locale(i), contextName, source, args))
}
