package config

import (
	_ "embed"
	"fmt"

	"bikeshare/utils"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfigFile []byte

// TripColumns contains the name of each csv column to analyze
type TripColumns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

type ExplorerConfig struct {
	LogLevel string      `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	DataDir  string      `yaml:"data_dir" validate:"required"`
	PageSize int         `yaml:"page_size" validate:"gt=0"`
	Columns  TripColumns `yaml:"columns"`
}

// LoadConfig returns the embedded default configuration overridden by the
// values of the file located at configFilepath. If configFilepath is empty
// only the defaults are used.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(defaultConfigFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing default config: %w", err)
	}

	if configFilepath != "" {
		configFile, err := utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(configFile, &explorerConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %w", err)
		}
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Validate checks that every field has an allowed value
func (ec *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}
