package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type GSheetConfig struct {
	CredentialsPath string `toml:"credentials_path"`
	SheetID         string `toml:"sheet_id"`
	SheetName       string `toml:"sheet_name"`
	StartCell       string `toml:"start_cell"`
}

type Config struct {
	API struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`

	Session struct {
		// Location is a file path for the default store or a redis://
		// URL for the shared-host variant.
		Location string `toml:"location"`
	} `toml:"session"`

	Metrics struct {
		Port string `toml:"port"`
	} `toml:"metrics"`

	Export struct {
		Schedule string   `toml:"schedule"`
		Courses  []string `toml:"courses"`
		DSN      string   `toml:"dsn"`

		GSheet map[string]GSheetConfig `toml:"gsheet"`
	} `toml:"export"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url is not specified in config")
	}
	if config.Session.Location == "" {
		return nil, fmt.Errorf("session.location is not specified in config")
	}

	logger.Debug.Printf("Loaded config for backend %s", config.API.BaseURL)

	return &config, nil
}
