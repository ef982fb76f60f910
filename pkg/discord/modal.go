package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Text input IDs of the translation modal.
const (
	InputContext = "context"
	InputSource  = "source"
	InputArgs    = "args"
)

// ModalValues maps each text input's CustomID to its submitted value.
func ModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := map[string]string{}
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

func ExtractModalData(data discordgo.ModalSubmitInteractionData) (contextName, source, args string) {
	v := ModalValues(data)
	return strings.TrimSpace(v[InputContext]), v[InputSource], v[InputArgs]
}

// SplitArgs splits a comma separated argument list, trimming blanks.
// An empty or blank list yields no arguments.
func SplitArgs(s string) []any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	args := make([]any, 0, len(parts))
	for _, p := range parts {
		args = append(args, strings.TrimSpace(p))
	}
	return args
}
