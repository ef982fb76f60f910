package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/ports/output"
	pkgdiscord "tscat/pkg/discord"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: pkgdiscord.Truncate(content, 2000),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondError(s *discordgo.Session, i *discordgo.Interaction, t output.T, loc string, err error) {
	log.Printf("⚠️ Interaction failed: %v", err)
	respondEphemeral(s, i, "❌ "+pkgdiscord.DomainErrorMessage(t, loc, err))
}
