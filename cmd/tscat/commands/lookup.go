package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func lookupCmd(a *app) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "lookup CONTEXT SOURCE",
		Short: "Print the translation of a source string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context(), false)
			if err != nil {
				return err
			}
			contextName, source := args[0], args[1]
			text, ok := svc.LookupDisambiguated(contextName, source, comment)
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), a.tr.T(a.uiLocale, "cli.lookup.missing", map[string]any{
					"Context": contextName,
					"Source":  source,
				}))
				text = source
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "disambiguation comment of the entry")
	return cmd
}

func trCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tr CONTEXT SOURCE [ARG...]",
		Short: "Translate a source string and substitute its %N placeholders",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context(), false)
			if err != nil {
				return err
			}
			values := make([]any, 0, len(args)-2)
			for _, v := range args[2:] {
				values = append(values, v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Translate(args[0], args[1], values...))
			return nil
		},
	}
}
