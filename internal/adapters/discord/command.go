package discord

import (
	"log"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
	pkgdiscord "tscat/pkg/discord"
)

const (
	commandTr       = "tr"
	commandContexts = "contexts"

	modalTr       = "tr_modal"
	selectContext = "select_context"

	// Discord caps select menus at 25 options and option fields at 100 characters.
	maxSelectOptions = 25
	maxOptionValue   = 100
)

// Commands returns the slash commands, described in English with Chinese localizations.
func Commands(t output.T) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandTr,
			Description:              t.T("en", "bot.cmd.tr", nil),
			DescriptionLocalizations: zhLocalization(t, "bot.cmd.tr"),
			Options: []*discordgo.ApplicationCommandOption{
				stringOption(t, pkgdiscord.InputContext, "bot.cmd.context"),
				stringOption(t, pkgdiscord.InputSource, "bot.cmd.source"),
				stringOption(t, pkgdiscord.InputArgs, "bot.cmd.args"),
			},
		},
		{
			Name:                     commandContexts,
			Description:              t.T("en", "bot.cmd.contexts", nil),
			DescriptionLocalizations: zhLocalization(t, "bot.cmd.contexts"),
		},
	}
}

func stringOption(t output.T, name, key string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionString,
		Name:                     name,
		Description:              t.T("en", key, nil),
		DescriptionLocalizations: *zhLocalization(t, key),
	}
}

func zhLocalization(t output.T, key string) *map[discordgo.Locale]string {
	return &map[discordgo.Locale]string{discordgo.ChineseCN: t.T("zh-CN", key, nil)}
}

// HandleTrCommand answers /tr directly, or opens the lookup modal when the
// context or source option is missing.
func (h *Handler) HandleTrCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := map[string]string{}
	for _, o := range i.ApplicationCommandData().Options {
		if o.Type == discordgo.ApplicationCommandOptionString {
			opts[o.Name] = o.StringValue()
		}
	}
	contextName, source := opts[pkgdiscord.InputContext], opts[pkgdiscord.InputSource]
	if contextName == "" || source == "" {
		h.openTrModal(s, i, contextName, source)
		return
	}
	respondEphemeral(s, i.Interaction, h.trReply(locale(i), contextName, source, opts[pkgdiscord.InputArgs]))
}

// HandleContextsCommand lists the catalog contexts in a select menu.
func (h *Handler) HandleContextsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	loc := locale(i)
	options := h.contextOptions(loc, h.catalog.Contexts())
	if len(options) == 0 {
		respondEphemeral(s, i.Interaction, h.t.T(loc, "bot.contexts.empty", nil))
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.t.T(loc, "bot.contexts.pick", nil),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    selectContext,
						Placeholder: h.t.T(loc, "bot.contexts.placeholder", nil),
						Options:     options,
					},
				}},
			},
		},
	})
}

// trReply renders the answer to a lookup of source in contextName.
func (h *Handler) trReply(loc, contextName, source, args string) string {
	if _, ok := h.catalog.Lookup(contextName, source); !ok {
		return h.t.T(loc, "bot.tr.missing", map[string]any{"Source": source})
	}
	return h.t.T(loc, "bot.tr.result", map[string]any{
		"Context":     contextName,
		"Source":      source,
		"Translation": h.catalog.Translate(contextName, source, pkgdiscord.SplitArgs(args)...),
	})
}

func footerData(language string, translated, messages int) map[string]any {
	return map[string]any{"Language": language, "Translated": translated, "Messages": messages}
}

// contextOptions builds the select menu entries. A context whose name does
// not fit in an option value is left out, since a truncated value would
// name a context that does not exist.
func (h *Handler) contextOptions(loc string, summaries []entities.ContextSummary) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, min(len(summaries), maxSelectOptions))
	for _, c := range summaries {
		if len(options) == maxSelectOptions {
			break
		}
		if utf8.RuneCountInString(c.Name) > maxOptionValue {
			log.Printf("⚠️ Discord: context %.40q... too long for the select menu", c.Name)
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       pkgdiscord.Truncate(c.Name, maxOptionValue),
			Value:       c.Name,
			Description: pkgdiscord.Truncate(h.t.T(loc, "bot.embed.footer", footerData(h.catalog.Language(), c.Translated, c.Messages)), maxOptionValue),
		})
	}
	return options
}
