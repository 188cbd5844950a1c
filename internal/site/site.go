package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/models"
)

// Builder writes rendered pages below a site root
type Builder struct {
	root     string
	renderer *Renderer
	logger   *zap.Logger
}

// BuildReport summarizes a full regeneration
type BuildReport struct {
	Pages       []string // written page paths, relative to the root
	Skipped     []string // ids without a page (hidden, SkipHiddenPages)
	Removed     []string // stale pages of skipped ids, relative to the root
	Overwritten []string // ids whose extracted stats were replaced by the placeholder
}

// NewBuilder creates a Builder for root, looking up portraits below it
func NewBuilder(root string, opts Options, logger *zap.Logger) (*Builder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r, err := NewRenderer(opts, os.DirFS(root))
	if err != nil {
		return nil, err
	}
	return &Builder{root: root, renderer: r, logger: logger}, nil
}

// Root returns the site root directory
func (b *Builder) Root() string {
	return b.root
}

// Renderer returns the underlying renderer
func (b *Builder) Renderer() *Renderer {
	return b.renderer
}

// PageFile is the filesystem path of the page of id
func (b *Builder) PageFile(id string) string {
	return filepath.Join(b.root, filepath.FromSlash(PagePath(id)))
}

// Build regenerates every character page and the overview. Pages are
// always rewritten from scratch, so stats spliced in earlier are lost; each
// such page is logged and listed in the report. Pages left behind for
// skipped records are removed.
func (b *Builder) Build(cat *models.Catalog) (BuildReport, error) {
	var report BuildReport
	if err := CheckPages(cat); err != nil {
		return report, err
	}
	if err := os.MkdirAll(filepath.Join(b.root, PagesDir), 0o755); err != nil {
		return report, fmt.Errorf("create pages directory: %w", err)
	}

	for id, ch := range cat.All() {
		if !b.renderer.WantsPage(ch) {
			report.Skipped = append(report.Skipped, id)
			removed, err := b.removePage(id)
			if err != nil {
				return report, err
			}
			if removed {
				report.Removed = append(report.Removed, PagePath(id))
			}
			continue
		}
		page, err := b.renderer.RenderCharacterPage(ch)
		if err != nil {
			return report, err
		}

		target := b.PageFile(id)
		if existing, err := os.ReadFile(target); err == nil {
			if state, _ := InspectStats(existing); state == StatsFilled {
				b.logger.Warn("overwriting extracted stats", zap.String("id", id), zap.String("page", target))
				report.Overwritten = append(report.Overwritten, id)
			}
		}
		if err := writeFile(target, page); err != nil {
			return report, err
		}
		b.logger.Debug("page written", zap.String("id", id), zap.String("page", target))
		report.Pages = append(report.Pages, PagePath(id))
	}

	if err := b.BuildOverview(cat); err != nil {
		return report, err
	}
	b.logger.Info("site generated",
		zap.Int("pages", len(report.Pages)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("removed", len(report.Removed)),
		zap.Int("overwritten", len(report.Overwritten)),
	)
	return report, nil
}

// BuildOverview rewrites wiki.html only
func (b *Builder) BuildOverview(cat *models.Catalog) error {
	if err := CheckPages(cat); err != nil {
		return err
	}
	page, err := b.renderer.RenderOverview(cat)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(b.root, 0o755); err != nil {
		return fmt.Errorf("create site root: %w", err)
	}
	return writeFile(filepath.Join(b.root, OverviewFile), page)
}

// WriteStats splices fragment into the stats region of the existing page of
// id and returns the page path.
func (b *Builder) WriteStats(id, fragment string) (string, error) {
	target := b.PageFile(id)
	page, err := os.ReadFile(target)
	if err != nil {
		return target, fmt.Errorf("read page: %w", err)
	}
	updated, err := SpliceStats(page, fragment)
	if err != nil {
		return target, fmt.Errorf("%s: %w", target, err)
	}
	return target, writeFile(target, updated)
}

// ReadStatsState inspects the page of id; a missing page is StatsMissing
func (b *Builder) ReadStatsState(id string) (StatsState, error) {
	page, err := os.ReadFile(b.PageFile(id))
	if os.IsNotExist(err) {
		return StatsMissing, nil
	}
	if err != nil {
		return StatsMissing, err
	}
	return InspectStats(page)
}

func (b *Builder) removePage(id string) (bool, error) {
	target := b.PageFile(id)
	err := os.Remove(target)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove %s: %w", target, err)
	}
	b.logger.Info("stale page removed", zap.String("id", id), zap.String("page", target))
	return true, nil
}

func writeFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
