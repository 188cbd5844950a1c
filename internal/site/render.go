// Package site turns the catalog into the static wiki: one overview page and
// one page per character.
package site

import (
	"bytes"
	"cmp"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"

	"github.com/meur/gemwiki/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	OverviewFile = "wiki.html"
	PagesDir     = "characters"
	IconsDir     = "images/icons"
	PortraitsDir = "images/portrait"
)

// Options controls what the renderer emits
type Options struct {
	// AlwaysShow lists groups whose section is emitted even when empty.
	AlwaysShow []models.Group
	// SkipHiddenPages stops hidden records from getting a standalone page.
	// Hidden records never appear on the overview either way.
	SkipHiddenPages bool

	Title      string
	Version    string
	TrackerURL string // overview back link
	WikiURL    string // character page back link
}

// DefaultOptions mirrors the published wiki
func DefaultOptions() Options {
	return Options{
		AlwaysShow: []models.Group{models.GroupKatovic},
		Title:      "Granado Espada M",
		Version:    "1.0",
		TrackerURL: "https://freischultz.github.io/unofficial_gem/index.html",
		WikiURL:    "https://freischultz.github.io/unofficial_gem/wiki.html",
	}
}

// Renderer produces page bytes. It never touches the output directory.
type Renderer struct {
	opts     Options
	assets   fs.FS
	overview *template.Template
	page     *template.Template
}

// NewRenderer parses the embedded templates. assets is the site root used to
// look up portraits; nil means no portrait is ever found.
func NewRenderer(opts Options, assets fs.FS) (*Renderer, error) {
	overview, err := template.ParseFS(templateFS, "templates/wiki.html", "templates/head.html")
	if err != nil {
		return nil, fmt.Errorf("parse overview template: %w", err)
	}
	page, err := template.ParseFS(templateFS, "templates/character.html", "templates/head.html")
	if err != nil {
		return nil, fmt.Errorf("parse character template: %w", err)
	}
	return &Renderer{opts: opts, assets: assets, overview: overview, page: page}, nil
}

// Options returns the renderer configuration
func (r *Renderer) Options() Options {
	return r.opts
}

type cardView struct {
	Href   string
	Icon   string
	Name   string
	Border string
	Style  cardStyle
}

type sectionView struct {
	Name  string
	Icon  string
	Color string
	Cards []cardView
}

type overviewView struct {
	Title    string
	Version  string
	BackURL  string
	Sections []sectionView
}

// sections computes the overview layout: groups in fixed order, visible
// records only, sorted by sort_order with ties kept in catalog order. Empty
// groups are dropped unless listed in AlwaysShow.
func (r *Renderer) sections(cat *models.Catalog) []sectionView {
	type member struct {
		id string
		ch *models.Character
	}

	var sections []sectionView
	for _, g := range models.Groups() {
		var members []member
		for _, id := range cat.InGroup(g) {
			if ch, _ := cat.Get(id); !ch.Hidden {
				members = append(members, member{id: id, ch: ch})
			}
		}
		if len(members) == 0 && !slices.Contains(r.opts.AlwaysShow, g) {
			continue
		}
		slices.SortStableFunc(members, func(a, b member) int {
			return cmp.Compare(a.ch.SortOrder, b.ch.SortOrder)
		})

		style := styleFor(g)
		sec := sectionView{Name: g.String(), Icon: groupIcon(g), Color: groupColor(g)}
		for _, m := range members {
			sec.Cards = append(sec.Cards, cardView{
				Href:   PagePath(m.id),
				Icon:   path.Join(IconsDir, m.ch.Icon),
				Name:   m.ch.Name,
				Border: m.ch.Classification.BorderClass(),
				Style:  style,
			})
		}
		sections = append(sections, sec)
	}
	return sections
}

// RenderOverview renders wiki.html. Output depends only on the catalog.
func (r *Renderer) RenderOverview(cat *models.Catalog) ([]byte, error) {
	view := overviewView{
		Title:    r.opts.Title,
		Version:  r.opts.Version,
		BackURL:  r.opts.TrackerURL,
		Sections: r.sections(cat),
	}
	var buf bytes.Buffer
	if err := r.overview.ExecuteTemplate(&buf, "wiki.html", view); err != nil {
		return nil, fmt.Errorf("render overview: %w", err)
	}
	return buf.Bytes(), nil
}

type pageView struct {
	Title      string
	BackURL    string
	Name       string
	Group      string
	Image      string
	Border     string
	StatsBegin template.HTML
	StatsEnd   template.HTML
	Notes      template.HTML
}

// RenderCharacterPage renders the standalone page of one record with an
// empty stats region.
func (r *Renderer) RenderCharacterPage(ch *models.Character) ([]byte, error) {
	notes, err := RenderNotes(ch.Notes)
	if err != nil {
		return nil, fmt.Errorf("render notes of %s: %w", ch.Name, err)
	}
	view := pageView{
		Title:      r.opts.Title,
		BackURL:    r.opts.WikiURL,
		Name:       ch.Name,
		Group:      ch.Group.String(),
		Image:      r.ImagePath(ch),
		Border:     ch.Classification.BorderClass(),
		StatsBegin: template.HTML(StatsBegin),
		StatsEnd:   template.HTML(StatsEnd),
		Notes:      notes,
	}
	var buf bytes.Buffer
	if err := r.page.ExecuteTemplate(&buf, "character.html", view); err != nil {
		return nil, fmt.Errorf("render page of %s: %w", ch.Name, err)
	}
	return buf.Bytes(), nil
}

// ImagePath is the image a character page shows, relative to the page: the
// portrait when the asset exists, the icon otherwise.
func (r *Renderer) ImagePath(ch *models.Character) string {
	portrait := path.Join(PortraitsDir, models.PortraitFile(ch.Icon))
	if r.assets != nil {
		if _, err := fs.Stat(r.assets, portrait); err == nil {
			return "../" + portrait
		}
	}
	return "../" + path.Join(IconsDir, ch.Icon)
}

// WantsPage reports whether a record gets a standalone page
func (r *Renderer) WantsPage(ch *models.Character) bool {
	return !(ch.Hidden && r.opts.SkipHiddenPages)
}

// PagePath is the page location of id relative to the site root
func PagePath(id string) string {
	return path.Join(PagesDir, models.PageSlug(id)+".html")
}

// ErrPageCollision is returned when two records would share one page file
var ErrPageCollision = errors.New("records share a page file")

// CheckPages verifies that every record maps to its own page file
func CheckPages(cat *models.Catalog) error {
	owners := make(map[string]string, cat.Len())
	for id := range cat.All() {
		page := PagePath(id)
		if other, ok := owners[page]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrPageCollision, other, id, page)
		}
		owners[page] = id
	}
	return nil
}
