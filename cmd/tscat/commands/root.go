package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tscat/internal/application"
	"tscat/internal/config"
	"tscat/internal/domain/entities"
	"tscat/internal/infrastructure/database"
	"tscat/internal/infrastructure/i18n"
	"tscat/internal/infrastructure/tsfile"
	"tscat/internal/ports/output"
	"tscat/internal/resources"
)

// needsStore marks commands that open the catalog store even without --from-db.
const needsStore = "store"

// app holds what the subcommands share for one invocation.
type app struct {
	catalogPath string
	language    string
	uiLocale    string
	fromDB      bool

	cfg    *config.Config
	tr     *i18n.Translator
	repo   database.Repository
	loader *application.CatalogLoader
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the tscat command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "tscat",
		Short:        "Qt Linguist translation catalog toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "path of a .ts file (default: select by --language)")
	root.PersistentFlags().StringVar(&a.language, "language", "", "System, English, Chinese or a language tag (env TSCAT_LANGUAGE)")
	root.PersistentFlags().StringVar(&a.uiLocale, "ui-locale", "", "language of tscat's own messages (env TSCAT_UI_LOCALE)")
	root.PersistentFlags().BoolVar(&a.fromDB, "from-db", false, "load catalogs from the store named by DATABASE_URL")

	root.AddCommand(
		lookupCmd(a),
		trCmd(a),
		contextsCmd(a),
		checkCmd(a),
		exportCmd(a),
		importCmd(a),
		languagesCmd(a),
		botCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("catalog") {
		a.catalogPath = cfg.Catalog
	}
	if !flags.Changed("language") {
		a.language = cfg.Language
	}
	if !flags.Changed("ui-locale") {
		a.uiLocale = cfg.UILocale
	}
	a.cfg = cfg
	a.tr = i18n.NewTranslator(a.uiLocale)

	if cfg.DatabaseURL != "" && (a.fromDB || cmd.Annotations[needsStore] == "true") {
		repo, err := database.Open(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		a.repo = repo
	}

	source := tsfile.NewSource(cfg.CatalogPrefix, os.DirFS(cfg.CatalogDir), resources.Catalogs())
	a.loader = application.NewCatalogLoader(source, a.repository())
	return nil
}

func (a *app) close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}

// repository returns the store as a port, nil when none is open.
func (a *app) repository() output.CatalogRepository {
	if a.repo == nil {
		return nil
	}
	return a.repo
}

func (a *app) loadOptions() application.LoadOptions {
	return application.LoadOptions{
		Path:            a.catalogPath,
		Preference:      a.language,
		SystemLanguages: application.SystemLanguages(os.Getenv),
		FromRepository:  a.fromDB,
	}
}

// service loads the selected catalog. Lenient loading falls back to an empty
// catalog on error; strict loading returns the error.
func (a *app) service(ctx context.Context, strict bool) (*application.CatalogService, error) {
	var c *entities.Catalog
	if strict {
		var err error
		if c, err = a.loader.Load(ctx, a.loadOptions()); err != nil {
			return nil, err
		}
	} else {
		c = a.loader.LoadOrEmpty(ctx, a.loadOptions())
	}
	return application.NewCatalogService(c, a.repository(),
		tsfile.Exporter{},
		i18n.NewTOMLExporter(),
		i18n.NewYAMLExporter(),
		i18n.NewJSONExporter(),
	), nil
}
