package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/croissant/internal/config"
	"github.com/vvka-141/croissant/pkg/croissant"
)

// loadProjectConfig loads .env into the environment, then the project config,
// then applies CROISSANT_* overrides. An explicit configPath must exist; the
// default ./croissant.yaml is optional and yields an empty config when absent.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		projectCfg *config.ProjectConfig
		err        error
	)
	if configPath != "" {
		projectCfg, err = config.LoadFile(configPath)
	} else {
		projectCfg, err = config.Load(".")
	}

	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && configPath == "" {
			projectCfg = &config.ProjectConfig{}
		} else if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s does not exist: %w", configPath, croissant.ErrInvalidConfig)
		} else {
			return nil, fmt.Errorf("failed to load %s: %w", configName(configPath), err)
		}
	}

	projectCfg.ApplyEnv(os.LookupEnv)
	return projectCfg, nil
}

func configName(configPath string) string {
	if configPath == "" {
		return config.ConfigFileName
	}
	return configPath
}

// firstNonEmpty returns the first non-empty value, giving flags precedence
// over configured values.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
