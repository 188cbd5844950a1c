package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change config.json",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "config   %s\n", a.paths.Config)
			fmt.Fprintf(a.out, "catalog  %s\n", a.paths.Catalog)
			fmt.Fprintf(a.out, "site     %s\n", a.paths.Site)
			fmt.Fprintf(a.out, "api key  %s\n", a.cfg.MaskedKey())
			fmt.Fprintf(a.out, "model    %s\n", a.cfg.Model)
			fmt.Fprintf(a.out, "timeout  %s\n", a.cfg.Timeout())
			if a.cfg.Endpoint != "" {
				fmt.Fprintf(a.out, "endpoint %s\n", a.cfg.Endpoint)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-key [key]",
		Short: "Store the Gemini API key (reads standard input without an argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				data, err := io.ReadAll(a.in)
				if err != nil {
					return err
				}
				key = string(data)
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return fmt.Errorf("empty api key")
			}
			return a.updateConfig(func(c *config.Config) { c.APIKey = key })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-model <model>",
		Short: "Store the Gemini model used by stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateConfig(func(c *config.Config) { c.Model = args[0] })
		},
	})
	return cmd
}

// updateConfig rewrites the file content, not the environment-merged view
func (a *app) updateConfig(fn func(*config.Config)) error {
	cfg, err := config.Load(a.paths.Config)
	if err != nil {
		return err
	}
	fn(&cfg)
	if err := config.Save(a.paths.Config, cfg); err != nil {
		return err
	}
	printf(a.out, okStyle, "Saved %s", a.paths.Config)
	return nil
}
