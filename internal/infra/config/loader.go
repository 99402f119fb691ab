package config

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/shopcart/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace marker and configuration file.
const FileName = "shopcart.yaml"

// Load reads shopcart.yaml from the workspace root.
func Load(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile reads a configuration file and applies it on top of
// domain.DefaultConfig. On error the defaults are still returned.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
