package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

func parseTomlConfig(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFileToLoad returns customPath when given, or the first of
// lookupPaths that exists. Finding nothing in lookupPaths is not an error.
func findConfigFileToLoad(customPath string, lookupPaths []string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("no such file: %s", customPath)
		}

		return customPath, nil
	}

	for _, p := range lookupPaths {
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}
