package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tscat/internal/application"
)

func languagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages a catalog is available for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs, err := a.loader.Available(cmd.Context(), a.fromDB)
			if err != nil {
				return err
			}
			if len(langs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.tr.T(a.uiLocale, "cli.languages.none", nil))
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()
			for _, l := range langs {
				fmt.Fprintf(tw, "%s\t%s\n", l, application.DisplayName(l))
			}
			return nil
		},
	}
}
