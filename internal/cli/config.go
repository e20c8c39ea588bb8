package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielmiessler/tw2s/internal/i18n"
	"github.com/danielmiessler/tw2s/internal/log"
	"github.com/danielmiessler/tw2s/internal/util"
)

// fileConfig is the YAML config file. A nil field is a key the file does
// not set.
type fileConfig struct {
	Force    *bool   `yaml:"force"`
	DictDir  *string `yaml:"dictDir"`
	Language *string `yaml:"language"`
	Debug    *int    `yaml:"debug"`
}

// loadYAMLConfig reads the option values stored in the config file at path.
// A path given explicitly must exist.
func loadYAMLConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(i18n.T("config_error_read_file"), path, err)
	}

	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(i18n.T("config_error_parse_file"), path, err)
	}
	log.Debug(log.Detailed, "loaded config %s", path)
	return cfg, nil
}

// loadEnvFile loads ~/.config/tw2s/.env into the process environment.
// Variables that are already set keep their value.
func loadEnvFile() error {
	path, err := util.GetDefaultEnvPath()
	if err != nil || path == "" {
		return err
	}
	if err = godotenv.Load(path); err != nil {
		return fmt.Errorf(i18n.T("config_error_load_env"), path, err)
	}
	return nil
}
