package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/storage"
)

func (a *app) discoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Add catalog records for new icons in images/icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			cat, err := store.LoadOrEmpty()
			if err != nil {
				return err
			}

			res, err := storage.Discover(cat, os.DirFS(a.paths.IconsDir()), a.logger)
			if err != nil {
				return err
			}
			for _, id := range res.Added {
				ch, _ := cat.Get(id)
				printf(a.out, okStyle, "+ %s  %s", id, ch.Name)
			}
			for _, name := range res.Skipped {
				printf(a.out, warnStyle, "? %s  unrecognized icon name, skipped", name)
			}

			if len(res.Added) == 0 {
				printf(a.out, dimStyle, "No new characters found in %s", a.paths.IconsDir())
				return nil
			}
			if err := store.Save(cat); err != nil {
				return err
			}
			printf(a.out, titleStyle, "Added %d new characters (%d total)", len(res.Added), cat.Len())
			return nil
		},
	}
}
