package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/site"
	"github.com/meur/gemwiki/internal/stats"
)

func (a *app) statsCmd() *cobra.Command {
	var (
		model   string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "stats <character> <image>...",
		Short: "Extract stats from screenshots and write them into the character page",
		Long: `stats sends the screenshots to Gemini, which transcribes the basic stats
and stance information into an HTML fragment. The fragment is sanitized and
replaces the stats region of the existing page. Pass "-" as an image to
read one from standard input.

The page must already exist; run build first. A later full build resets
the region.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.APIKey == "" {
				return stats.ErrNoAPIKey
			}
			cat, err := a.store().Load()
			if err != nil {
				return err
			}
			id, err := a.lookup(cat, args[0])
			if err != nil {
				return err
			}

			images, cleanup, err := stats.Collect(args[1:], a.in)
			defer cleanup()
			if err != nil {
				return err
			}

			if model == "" {
				model = a.cfg.Model
			}
			if timeout <= 0 {
				timeout = a.cfg.Timeout()
			}
			extractor, err := stats.NewGeminiExtractor(cmd.Context(), stats.ClientOptions{
				APIKey:  a.cfg.APIKey,
				Model:   model,
				BaseURL: a.cfg.Endpoint,
			})
			if err != nil {
				return err
			}
			b, err := a.builder(site.DefaultOptions())
			if err != nil {
				return err
			}

			printf(a.out, infoStyle, "Analyzing %d image(s) for %s with %s...", len(images), id, extractor.Model())
			path, err := stats.NewUpdater(extractor, b, timeout, a.logger).Update(cmd.Context(), id, images)
			if err != nil {
				return err
			}
			printf(a.out, okStyle, "Updated %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Gemini model (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (default from config, 60s)")
	return cmd
}
