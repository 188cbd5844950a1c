// Package stats extracts character statistics from screenshots with a
// vision model and writes them into the character's wiki page.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/site"
)

var (
	ErrNoAPIKey      = errors.New("api key is not configured")
	ErrNoImages      = errors.New("no images given")
	ErrEmptyResponse = errors.New("model returned no content")
)

// DefaultTimeout bounds one extraction call
const DefaultTimeout = 60 * time.Second

// Extractor turns screenshots into an HTML fragment
type Extractor interface {
	Extract(ctx context.Context, images []Image) (string, error)
}

// PageWriter splices a fragment into the stats region of a page
type PageWriter interface {
	WriteStats(id, fragment string) (string, error)
}

// Updater runs one extraction and stores the result
type Updater struct {
	extractor Extractor
	pages     PageWriter
	timeout   time.Duration
	logger    *zap.Logger
}

func NewUpdater(extractor Extractor, pages PageWriter, timeout time.Duration, logger *zap.Logger) *Updater {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Updater{extractor: extractor, pages: pages, timeout: timeout, logger: logger}
}

// Update extracts stats for id from images and writes them into its page.
// It returns the page path. Nothing is written when any step fails.
func (u *Updater) Update(ctx context.Context, id string, images []Image) (string, error) {
	if len(images) == 0 {
		return "", ErrNoImages
	}
	log := u.logger.With(zap.String("run", uuid.NewString()), zap.String("id", id))
	log.Info("extracting stats", zap.Int("images", len(images)))

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	raw, err := u.extractor.Extract(ctx, images)
	if err != nil {
		log.Error("extraction failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("extract stats for %s: %w", id, err)
	}

	fragment := site.SanitizeFragment(raw)
	if fragment == "" {
		return "", fmt.Errorf("extract stats for %s: %w", id, ErrEmptyResponse)
	}

	path, err := u.pages.WriteStats(id, fragment)
	if err != nil {
		return path, err
	}
	log.Info("stats written", zap.String("page", path), zap.Int("bytes", len(fragment)), zap.Duration("elapsed", time.Since(start)))
	return path, nil
}
