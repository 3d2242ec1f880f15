package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/actors/internal/logging"
	"github.com/mesh-intelligence/actors/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyDSN       = "dsn"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyLogOutput = "log.output"

	envPrefix = "ACTORS"
)

// settings is the decoded content of config.yaml after defaults and
// environment overrides.
type settings struct {
	Backend string         `mapstructure:"backend"`
	DataDir string         `mapstructure:"data_dir"`
	DSN     string         `mapstructure:"dsn"`
	Log     logging.Config `mapstructure:"log"`
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend string         `yaml:"backend"`
	DataDir string         `yaml:"data_dir,omitempty"`
	DSN     string         `yaml:"dsn,omitempty"`
	Log     logging.Config `yaml:"log"`
}

// loadSettings reads config.yaml from configDir using Viper. A missing
// file is not an error; defaults apply. ACTORS_BACKEND and ACTORS_DSN
// override the file.
func loadSettings(configDir string) (settings, error) {
	def := logging.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSONL)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyDSN, "")
	v.SetDefault(cfgKeyLogLevel, def.Level)
	v.SetDefault(cfgKeyLogFormat, string(def.Format))
	v.SetDefault(cfgKeyLogOutput, def.Output)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyBackend); err != nil {
		return settings{}, err
	}
	if err := v.BindEnv(cfgKeyDSN); err != nil {
		return settings{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left alone.
func writeConfigIfMissing(configDir, dataDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Backend: types.BackendJSONL,
		DataDir: dataDir,
		Log:     logging.DefaultConfig(),
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
