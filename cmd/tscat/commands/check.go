package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate placeholders and duplicates of the selected catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context(), true)
			if err != nil {
				return err
			}
			report := svc.Check()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, issue := range report.Issues {
				if !verbose && !issue.Kind.Blocking() {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%q\t%s\n", issue.Kind, issue.Context, issue.Source, issue.Detail)
			}
			tw.Flush()

			if blocking := report.Blocking(); len(blocking) > 0 {
				return errors.New(a.tr.T(a.uiLocale, "cli.check.failed", map[string]any{"Count": len(blocking)}))
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.tr.T(a.uiLocale, "cli.check.ok", map[string]any{
				"Messages": report.Messages,
				"Contexts": report.Contexts,
			}))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list unfinished, untranslated and obsolete entries")
	return cmd
}
