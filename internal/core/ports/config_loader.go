package ports

import "go.trai.ch/degrees/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and merges environment overrides.
	// An empty path selects the default file, which may be absent.
	Load(path string) (domain.Config, error)
}
