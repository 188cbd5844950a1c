package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/site"
)

func (a *app) listCmd() *cobra.Command {
	var (
		groupName  string
		hiddenOnly bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the catalog as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var group models.Group
			if groupName != "" {
				g, ok := models.ParseGroup(groupName)
				if !ok {
					return fmt.Errorf("unknown group %q", groupName)
				}
				group = g
			}

			cat, err := a.store().Load()
			if err != nil {
				return err
			}
			b, err := a.builder(site.DefaultOptions())
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "GROUP", "CLASS", "ORDER", "HIDDEN", "STATS").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return titleStyle.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})

			rows := 0
			for id, ch := range cat.All() {
				if groupName != "" && ch.Group != group {
					continue
				}
				if hiddenOnly && !ch.Hidden {
					continue
				}
				state, err := b.ReadStatsState(id)
				if err != nil {
					return err
				}
				hidden := ""
				if ch.Hidden {
					hidden = "yes"
				}
				t.Row(id, ch.Name, ch.Group.String(), ch.Classification.String(),
					strconv.Itoa(ch.SortOrder), hidden, state.String())
				rows++
			}

			fmt.Fprintln(a.out, t.Render())
			printf(a.out, dimStyle, "%d of %d characters", rows, cat.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&groupName, "group", "g", "", "Only list one group")
	cmd.Flags().BoolVar(&hiddenOnly, "hidden", false, "Only list hidden characters")
	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <character>",
		Short: "Show one character in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.store().Load()
			if err != nil {
				return err
			}
			id, err := a.lookup(cat, args[0])
			if err != nil {
				return err
			}
			ch, _ := cat.Get(id)
			b, err := a.builder(site.DefaultOptions())
			if err != nil {
				return err
			}
			state, err := b.ReadStatsState(id)
			if err != nil {
				return err
			}

			printf(a.out, titleStyle, "%s", ch.Name)
			field := func(k, v string) {
				fmt.Fprintf(a.out, "  %-15s %s\n", infoStyle.Render(k), v)
			}
			field("id", id)
			field("icon", ch.Icon)
			field("group", ch.Group.String())
			field("classification", ch.Classification.String())
			field("rare", strconv.FormatBool(ch.IsRare))
			field("sort order", strconv.Itoa(ch.SortOrder))
			field("hidden", strconv.FormatBool(ch.Hidden))
			field("page", site.PagePath(id))
			field("image", b.Renderer().ImagePath(ch))
			field("stats", state.String())

			if ch.Notes == "" {
				return nil
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return err
			}
			notes, err := r.Render(ch.Notes)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, notes)
			return nil
		},
	}
}
