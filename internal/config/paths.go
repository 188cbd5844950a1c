package config

import (
	"os"
	"path/filepath"
)

// Paths are the files and directories one invocation works with
type Paths struct {
	Base    string
	Catalog string
	Config  string
	Plan    string
	Site    string
}

// ResolvePaths fills every empty entry from base. Base itself defaults to
// the working directory.
func ResolvePaths(p Paths) Paths {
	if p.Base == "" {
		p.Base = "."
	}
	if p.Catalog == "" {
		p.Catalog = filepath.Join(p.Base, CatalogFileName)
	}
	if p.Config == "" {
		p.Config = filepath.Join(p.Base, FileName)
	}
	if p.Plan == "" {
		p.Plan = filepath.Join(p.Base, "data", PlanFileName)
	}
	if p.Site == "" {
		p.Site = DetectSiteRoot(p.Base)
	}
	return p
}

// DetectSiteRoot returns base/http when it holds an images directory, and
// base otherwise.
func DetectSiteRoot(base string) string {
	nested := filepath.Join(base, "http")
	if info, err := os.Stat(filepath.Join(nested, "images")); err == nil && info.IsDir() {
		return nested
	}
	return base
}

// IconsDir is where icon assets live below the site root
func (p Paths) IconsDir() string {
	return filepath.Join(p.Site, "images", "icons")
}

// PortraitsDir is where portrait assets live below the site root
func (p Paths) PortraitsDir() string {
	return filepath.Join(p.Site, "images", "portrait")
}
