package models

// KeywordRule maps a label to the substrings that select it. Rules are kept
// in slices, never maps: the first matching rule wins and that order is part
// of the classifier contract.
type KeywordRule struct {
	Label    string   `mapstructure:"label"`
	Keywords []string `mapstructure:"keywords"`
}

type ExtensionRule struct {
	Label      string   `mapstructure:"label"`
	Extensions []string `mapstructure:"extensions"`
}

// RuleSet holds the ordered classification tables. Empty slices mean
// "use the built-in defaults".
type RuleSet struct {
	Subjects   []KeywordRule   `mapstructure:"subjects"`
	Categories []KeywordRule   `mapstructure:"categories"`
	FileTypes  []ExtensionRule `mapstructure:"file_types"`
}

type OrganizerConfig struct {
	MetadataDir string `mapstructure:"metadata_dir"`
	LogFile     string `mapstructure:"log_file"`
	CatalogFile string `mapstructure:"catalog_file"`
	ReportFile  string `mapstructure:"report_file"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Organizer OrganizerConfig `mapstructure:"organizer"`
	Rules     RuleSet         `mapstructure:"rules"`
}
