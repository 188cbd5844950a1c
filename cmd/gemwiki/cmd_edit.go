package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/editor"
	"github.com/meur/gemwiki/internal/models"
)

// edit loads the catalog, resolves the character argument, applies fn and
// commits the result
func (a *app) edit(arg string, fn func(cat *models.Catalog, id string) error) error {
	cat, err := a.store().Load()
	if err != nil {
		return err
	}
	id, err := a.lookup(cat, arg)
	if err != nil {
		return err
	}
	if err := fn(cat, id); err != nil {
		return err
	}
	return a.commit(cat)
}

func (a *app) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <character> <new name>",
		Short: "Change a character's display name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				if err := editor.Rename(cat, id, name); err != nil {
					return err
				}
				printf(a.out, okStyle, "%s is now %q", id, name)
				return nil
			})
		},
	}
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <character> <Stock|Scout|Recruit>",
		Short: "Set a character's classification",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := models.ParseClassification(args[1])
			if !ok {
				return fmt.Errorf("unknown classification %q", args[1])
			}
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				if err := editor.SetClassification(cat, id, c); err != nil {
					return err
				}
				printf(a.out, okStyle, "%s classified as %s", id, c)
				return nil
			})
		},
	}
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <character> <group>",
		Short: "Move a character to another group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := models.ParseGroup(strings.Join(args[1:], " "))
			if !ok {
				return fmt.Errorf("unknown group %q", strings.Join(args[1:], " "))
			}
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				if err := editor.SetGroup(cat, id, g); err != nil {
					return err
				}
				printf(a.out, okStyle, "%s moved to %s", id, g)
				return nil
			})
		},
	}
}

func (a *app) visibilityCmd(use, short string, visible bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <character>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				if err := editor.SetHidden(cat, id, !visible); err != nil {
					return err
				}
				printf(a.out, okStyle, "%s %s", id, visibilityWord(!visible))
				return nil
			})
		},
	}
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <character>",
		Short: "Flip a character between hidden and shown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				hidden, err := editor.ToggleHidden(cat, id)
				if err != nil {
					return err
				}
				printf(a.out, okStyle, "%s %s", id, visibilityWord(hidden))
				return nil
			})
		},
	}
}

func visibilityWord(hidden bool) string {
	if hidden {
		return "hidden"
	}
	return "shown"
}

func (a *app) reorderCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "reorder <group> [names...]",
		Short: "Set the display order of a group",
		Long: `reorder assigns sort order 0, 1, 2... to the named characters of a group.
Names come from the arguments after the group, or one per line from --file
("-" reads standard input). Characters left out keep their order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := models.ParseGroup(args[0])
			if !ok {
				return fmt.Errorf("unknown group %q", args[0])
			}
			names := args[1:]
			if file != "" {
				text, err := a.readText(file)
				if err != nil {
					return err
				}
				names = append(names, editor.ParseNameList(text)...)
			}
			if len(names) == 0 {
				return fmt.Errorf("no names given for %s", g)
			}

			cat, err := a.store().Load()
			if err != nil {
				return err
			}
			applied, unknown := editor.Reorder(cat, g, names)
			for i, id := range applied {
				ch, _ := cat.Get(id)
				printf(a.out, okStyle, "%3d  %s", i, ch.Name)
			}
			for _, name := range unknown {
				printf(a.out, warnStyle, "  ?  %s is not in %s", name, g)
			}
			if len(applied) == 0 {
				return fmt.Errorf("none of the names are in %s", g)
			}
			return a.commit(cat)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read names from a file, one per line")
	return cmd
}

func (a *app) noteCmd() *cobra.Command {
	var (
		file       string
		clearNotes bool
	)
	cmd := &cobra.Command{
		Use:   "note <character> [markdown...]",
		Short: "Set the markdown notes shown on a character page",
		Long: `note replaces the notes of a character. The text is markdown and appears
on the character page from the next "gemwiki build".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if file != "" {
				read, err := a.readText(file)
				if err != nil {
					return err
				}
				text = read
			}
			if clearNotes {
				text = ""
			} else if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no notes given, use --clear to remove them")
			}
			return a.edit(args[0], func(cat *models.Catalog, id string) error {
				if err := editor.Annotate(cat, id, text); err != nil {
					return err
				}
				printf(a.out, okStyle, "Notes of %s updated, run build to publish", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the notes from a file (\"-\" for standard input)")
	cmd.Flags().BoolVar(&clearNotes, "clear", false, "Remove the notes")
	return cmd
}

func (a *app) readText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(a.in)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
