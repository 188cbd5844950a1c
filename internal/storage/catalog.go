package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/models"
)

// ErrCatalogNotFound is returned by Load when the catalog file does not exist
var ErrCatalogNotFound = errors.New("catalog file not found")

// Store handles catalog file operations. The whole document is read and
// written at once; concurrent writers are not coordinated.
type Store struct {
	path   string
	logger *zap.Logger
}

// New creates a Store for the catalog file at path
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the catalog file location
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the catalog. Coerced values are logged as warnings.
func (s *Store) Load() (*models.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cat, issues, err := models.DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", s.path, err)
	}
	for _, is := range issues {
		s.logger.Warn("catalog entry corrected",
			zap.String("id", is.ID),
			zap.String("field", is.Field),
			zap.String("problem", is.Message))
	}
	s.logger.Debug("catalog loaded", zap.String("path", s.path), zap.Int("records", cat.Len()))
	return cat, nil
}

// LoadOrEmpty is Load, but a missing file yields an empty catalog
func (s *Store) LoadOrEmpty() (*models.Catalog, error) {
	cat, err := s.Load()
	if errors.Is(err, ErrCatalogNotFound) {
		s.logger.Info("no catalog yet, starting empty", zap.String("path", s.path))
		return models.NewCatalog(), nil
	}
	return cat, err
}

// Save replaces the catalog file with the encoded catalog
func (s *Store) Save(cat *models.Catalog) error {
	data, err := cat.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	s.logger.Debug("catalog saved", zap.String("path", s.path), zap.Int("records", cat.Len()))
	return nil
}
