package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/importer"
	"github.com/meur/gemwiki/internal/resolve"
	"github.com/meur/gemwiki/internal/site"
	"github.com/meur/gemwiki/internal/storage"
)

func (a *app) importCmd() *cobra.Command {
	var (
		dryRun bool
		build  bool
	)
	cmd := &cobra.Command{
		Use:   "import [plan.yaml]",
		Short: "Apply a release plan: reset every group, then assign the planned ones",
		Long: `import reads a plan listing, per group, the normal and rare characters of
the current release. Every record is first reset to Unreleased, then each
planned name is resolved (alias, exact name, id fragment, fuzzy) and takes
the planned group and rarity. Unresolved names are reported and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.paths.Plan
			if len(args) == 1 {
				path = args[0]
			}
			plan, err := storage.LoadPlan(path)
			if err != nil {
				return err
			}
			assignments, err := plan.Assignments()
			if err != nil {
				return err
			}

			store := a.store()
			cat, err := store.Load()
			if err != nil {
				return err
			}

			res := importer.Apply(cat, assignments, resolve.Default(plan.Aliases))
			for _, m := range res.Matched {
				printf(a.out, okStyle, "OK      %-28s -> %s (%s)", m.Name, m.ID, m.Strategy)
			}
			for _, u := range res.Unmatched {
				line := fmt.Sprintf("MISSING %-28s in %s", u.Name, u.Group)
				if u.Suggestion != nil {
					line += fmt.Sprintf(", closest is %q (%s)", u.Suggestion.Name, u.Suggestion.ID)
				}
				printf(a.out, errStyle, "%s", line)
			}
			printf(a.out, titleStyle, "Matched %d, missing %d, catalog %d", len(res.Matched), len(res.Unmatched), res.Catalog.Len())

			if dryRun {
				printf(a.out, infoStyle, "Dry run: catalog not written")
				return nil
			}
			if err := store.Save(res.Catalog); err != nil {
				return err
			}
			if !build {
				return nil
			}
			b, err := a.builder(site.DefaultOptions())
			if err != nil {
				return err
			}
			return b.BuildOverview(res.Catalog)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the result without writing the catalog")
	cmd.Flags().BoolVar(&build, "build", false, "Regenerate wiki.html after writing")
	return cmd
}
