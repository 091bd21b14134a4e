package screen

import (
	"log/slog"
	"path/filepath"
)

// Store selects the repository root for a request. Deployments either
// nest an extra brand level (assets/{brand}/{flow}/{screen}.json) or run
// flat (assets/{flow}/{screen}.json); which one is a config decision,
// not a request decision.
type Store struct {
	assetsDir   string
	brandScoped bool
	logger      *slog.Logger
}

// NewStore returns a store over assetsDir.
func NewStore(assetsDir string, brandScoped bool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{assetsDir: assetsDir, brandScoped: brandScoped, logger: logger}
}

// BrandScoped reports whether paths carry a leading brand segment.
func (s *Store) BrandScoped() bool {
	return s.brandScoped
}

// AssetsDir returns the configured assets root.
func (s *Store) AssetsDir() string {
	return s.assetsDir
}

// Repository returns the repository for one brand. In flat deployments
// the brand argument is ignored and every call shares the assets root.
func (s *Store) Repository(brand string) *Repository {
	if !s.brandScoped {
		return NewRepository(s.assetsDir, s.logger)
	}
	return NewRepository(filepath.Join(s.assetsDir, brand), s.logger)
}

// ListBrands returns the brand folders under the assets root. In flat
// deployments there are none.
func (s *Store) ListBrands() []string {
	if !s.brandScoped {
		return []string{}
	}
	return listSubdirectories(s.assetsDir)
}
