package app

import (
	"github.com/pavel-webdev/file-organizer/models"

	"github.com/spf13/viper"
)

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *models.AppConfig {
	return &models.AppConfig{
		Server: models.ServerConfig{Port: 8080},
		Organizer: models.OrganizerConfig{
			MetadataDir: "_metadata",
			LogFile:     "organizer.log",
			CatalogFile: "catalog.db",
			ReportFile:  "organization_report.json",
		},
		Rules: DefaultRules(),
	}
}

// LoadConfig reads a YAML config file. Rule tables are encoded as lists in
// the file so their order survives the round trip. Missing sections keep
// their defaults; an empty path returns the defaults directly.
func LoadConfig(path string) (*models.AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("organizer.metadata_dir", cfg.Organizer.MetadataDir)
	v.SetDefault("organizer.log_file", cfg.Organizer.LogFile)
	v.SetDefault("organizer.catalog_file", cfg.Organizer.CatalogFile)
	v.SetDefault("organizer.report_file", cfg.Organizer.ReportFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var loaded models.AppConfig
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, err
	}

	def := DefaultRules()
	if len(loaded.Rules.Subjects) == 0 {
		loaded.Rules.Subjects = def.Subjects
	}
	if len(loaded.Rules.Categories) == 0 {
		loaded.Rules.Categories = def.Categories
	}
	if len(loaded.Rules.FileTypes) == 0 {
		loaded.Rules.FileTypes = def.FileTypes
	}

	return &loaded, nil
}
