package commands

import (
	"github.com/spf13/cobra"

	"tscat/internal/adapters/discord"
)

func botCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve catalog lookups as Discord slash commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidateBot(); err != nil {
				return err
			}
			svc, err := a.service(cmd.Context(), false)
			if err != nil {
				return err
			}
			bot, err := discord.NewBot(a.cfg, svc, a.tr)
			if err != nil {
				return err
			}
			return bot.Start()
		},
	}
}
