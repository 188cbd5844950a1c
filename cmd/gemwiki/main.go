package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/config"
	"github.com/meur/gemwiki/internal/logging"
	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/resolve"
	"github.com/meur/gemwiki/internal/site"
	"github.com/meur/gemwiki/internal/storage"
)

// app carries the state shared by every subcommand
type app struct {
	flags     config.Paths
	logFormat string
	verbose   bool

	paths  config.Paths
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
	in     io.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gemwiki",
		Short: "Curate the Granado Espada M character catalog and build its wiki",
		Long: `gemwiki maintains characters.json, the catalog of playable characters,
and renders it into a static wiki: wiki.html plus one page per character
under characters/.

Run one gemwiki process per catalog at a time; concurrent writers are not
coordinated.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Base, "base", "", "Working directory holding characters.json (default: current)")
	pf.StringVar(&a.flags.Catalog, "catalog", "", "Catalog file (default: <base>/characters.json)")
	pf.StringVar(&a.flags.Site, "site", "", "Site root (default: <base>/http if it has images/, else <base>)")
	pf.StringVar(&a.flags.Config, "config", "", "Config file (default: <base>/config.json)")
	pf.StringVar(&a.logFormat, "log-format", "console", "Log format: console or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		a.discoverCmd(),
		a.importCmd(),
		a.buildCmd(),
		a.renameCmd(),
		a.classifyCmd(),
		a.moveCmd(),
		a.visibilityCmd("hide", "Hide a character from the overview", false),
		a.visibilityCmd("show", "Show a hidden character on the overview", true),
		a.toggleCmd(),
		a.reorderCmd(),
		a.noteCmd(),
		a.listCmd(),
		a.infoCmd(),
		a.statsCmd(),
		a.configCmd(),
		a.previewCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.out = cmd.OutOrStdout()
	a.in = cmd.InOrStdin()
	a.paths = config.ResolvePaths(a.flags)

	logger, err := logging.New(logging.Options{Format: a.logFormat, Verbose: a.verbose})
	if err != nil {
		return err
	}
	a.logger = logger

	cfg, err := config.Load(a.paths.Config)
	if err != nil {
		return err
	}
	a.cfg = cfg.ApplyEnv()

	a.logger.Debug("paths",
		zap.String("catalog", a.paths.Catalog),
		zap.String("site", a.paths.Site),
		zap.String("config", a.paths.Config),
	)
	return nil
}

func (a *app) store() *storage.Store {
	return storage.New(a.paths.Catalog, a.logger)
}

func (a *app) builder(opts site.Options) (*site.Builder, error) {
	return site.NewBuilder(a.paths.Site, opts, a.logger)
}

// lookup accepts an id, a page slug or a display name. Names must resolve
// by alias, exact name or id segment; a fuzzy hit is only offered as a hint.
func (a *app) lookup(cat *models.Catalog, arg string) (string, error) {
	if cat.Has(arg) {
		return arg, nil
	}
	for id := range cat.All() {
		if models.PageSlug(id) == arg {
			return id, nil
		}
	}
	m, ok := resolve.Default(nil).Resolve(arg, cat)
	if !ok {
		return "", fmt.Errorf("no character matches %q", arg)
	}
	if m.Strategy == resolve.StrategyFuzzy {
		ch, _ := cat.Get(m.ID)
		return "", fmt.Errorf("no character matches %q, closest is %q (%s)", arg, ch.Name, m.ID)
	}
	a.logger.Debug("resolved", zap.String("name", arg), zap.String("id", m.ID), zap.Stringer("strategy", m.Strategy))
	return m.ID, nil
}

// commit saves the catalog and refreshes the overview
func (a *app) commit(cat *models.Catalog) error {
	if err := a.store().Save(cat); err != nil {
		return err
	}
	b, err := a.builder(site.DefaultOptions())
	if err != nil {
		return err
	}
	return b.BuildOverview(cat)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
