package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tscat/internal/domain/entities"
)

func contextsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts [NAME]",
		Short: "List the catalog contexts, or the entries of one context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context(), false)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()

			if len(args) == 1 {
				cx, err := svc.Context(args[0])
				if err != nil {
					return err
				}
				for _, e := range cx.Entries() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Source, e.Translation, statusLabel(e))
				}
				return nil
			}

			summaries := svc.Contexts()
			if len(summaries) == 0 {
				fmt.Fprintln(tw, a.tr.T(a.uiLocale, "cli.contexts.empty", map[string]any{"Language": svc.Language()}))
				return nil
			}
			messages := 0
			for _, s := range summaries {
				messages += s.Messages
			}
			fmt.Fprintln(tw, a.tr.T(a.uiLocale, "cli.contexts.header", map[string]any{
				"Language": svc.Language(),
				"Contexts": len(summaries),
				"Messages": messages,
			}))
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%d/%d\n", s.Name, s.Translated, s.Messages)
			}
			return nil
		},
	}
}

func statusLabel(e entities.Entry) string {
	switch {
	case e.Status != entities.StatusFinished:
		return string(e.Status)
	case e.Translation == "":
		return "untranslated"
	default:
		return ""
	}
}
