package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func importCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "import",
		Short:       "Store the selected .ts catalog in the database named by DATABASE_URL",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{needsStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.fromDB {
				return errors.New("import reads .ts files; drop --from-db")
			}
			svc, err := a.service(cmd.Context(), true)
			if err != nil {
				return err
			}
			if svc.Catalog().IsEmpty() {
				return fmt.Errorf("no catalog selected for language %q", a.language)
			}
			if err := svc.Import(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.tr.T(a.uiLocale, "cli.import.done", map[string]any{
				"Language": svc.Language(),
				"Messages": svc.Catalog().Len(),
			}))
			return nil
		},
	}
}
