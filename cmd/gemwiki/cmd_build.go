package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/site"
	"github.com/meur/gemwiki/internal/watch"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		skipHidden   bool
		overviewOnly bool
		watchInputs  bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Regenerate wiki.html and every character page",
		Long: `build always regenerates from scratch. Character pages are rewritten with
an empty stats region, so stats added with "gemwiki stats" are lost; every
such page is reported before it is replaced. Use --overview-only to
refresh wiki.html alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := site.DefaultOptions()
			opts.SkipHiddenPages = skipHidden
			b, err := a.builder(opts)
			if err != nil {
				return err
			}

			run := func() error {
				cat, err := a.store().Load()
				if err != nil {
					return err
				}
				if overviewOnly {
					if err := b.BuildOverview(cat); err != nil {
						return err
					}
					printf(a.out, okStyle, "Wrote %s", site.OverviewFile)
					return nil
				}
				report, err := b.Build(cat)
				if err != nil {
					return err
				}
				for _, id := range report.Overwritten {
					printf(a.out, warnStyle, "! %s: extracted stats replaced by the placeholder", id)
				}
				for _, page := range report.Removed {
					printf(a.out, dimStyle, "- removed %s", page)
				}
				printf(a.out, okStyle, "Wrote %s and %d character pages (%d hidden skipped)",
					site.OverviewFile, len(report.Pages), len(report.Skipped))
				return nil
			}

			if err := run(); err != nil {
				return err
			}
			if !watchInputs {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, run)
		},
	}
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "Do not generate pages for hidden characters")
	cmd.Flags().BoolVar(&overviewOnly, "overview-only", false, "Only regenerate wiki.html")
	cmd.Flags().BoolVarP(&watchInputs, "watch", "w", false, "Rebuild whenever the catalog or image directories change")
	return cmd
}

func (a *app) watch(ctx context.Context, run func() error) error {
	printf(a.out, infoStyle, "Watching %s for changes, Ctrl+C to stop", a.paths.Catalog)
	return watch.Run(ctx, watch.Options{
		Inputs: []string{a.paths.Catalog, a.paths.IconsDir(), a.paths.PortraitsDir()},
		Logger: a.logger,
	}, run)
}
