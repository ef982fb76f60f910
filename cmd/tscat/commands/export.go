package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tscat/internal/infrastructure/i18n"
)

func exportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected catalog as .ts or as a go-i18n message file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context(), true)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return svc.Export(cmd.OutOrStdout(), format)
			}

			path := out
			if info, err := os.Stat(out); (err == nil && info.IsDir()) || strings.HasSuffix(out, string(os.PathSeparator)) {
				path = filepath.Join(out, exportFileName(a.cfg.CatalogPrefix, svc.Language(), format))
			}
			if err := writeFile(path, func(w io.Writer) error { return svc.Export(w, format) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), a.tr.T(a.uiLocale, "cli.export.done", map[string]any{
				"Language": svc.Language(),
				"Format":   format,
				"Path":     path,
			}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "ts", "ts, toml, yaml or json")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file or directory (default stdout)")
	return cmd
}

// exportFileName names an exported file the way its reader expects.
func exportFileName(prefix, language, format string) string {
	if format == "ts" {
		return prefix + "_" + language + ".ts"
	}
	return i18n.FileName(language, format)
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
