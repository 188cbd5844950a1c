package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/models"
)

// DiscoverResult summarises an icon scan
type DiscoverResult struct {
	Added   []string // ids of the new records
	Skipped []string // icon filenames that did not match the naming pattern
}

// Discover adds a default record for every PNG icon in icons whose derived id
// is not yet in the catalog. Existing records are left untouched. A missing
// icon directory only produces a warning.
func Discover(cat *models.Catalog, icons fs.FS, logger *zap.Logger) (DiscoverResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res DiscoverResult

	entries, err := fs.ReadDir(icons, ".")
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("icon directory not found, no characters discovered")
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to list icons: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}
		id := models.DeriveID(name)
		if cat.Has(id) {
			continue
		}
		parsed, ok := models.ParseIconFilename(name)
		if !ok {
			logger.Warn("skipping unrecognized icon", zap.String("icon", name))
			res.Skipped = append(res.Skipped, name)
			continue
		}
		cat.Put(id, models.NewCharacter(name, parsed.Name, parsed.IsRare))
		res.Added = append(res.Added, id)
		logger.Info("new character found", zap.String("id", id), zap.String("name", parsed.Name))
	}
	return res, nil
}
