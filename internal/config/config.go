// Package config loads CLI defaults from the environment. Values may also
// come from a .env file; command-line flags take precedence over both.
package config

// Config holds the environment-provided defaults.
type Config struct {
	// LogLevel is the slog level name (default: info)
	LogLevel string `env:"SHEETSCRAPE_LOG_LEVEL" default:"info"`

	// LogFormat is "text" or "json" (default: text)
	LogFormat string `env:"SHEETSCRAPE_LOG_FORMAT" default:"text"`

	// Format is the output encoding, "json" or "yaml" (default: json)
	Format string `env:"SHEETSCRAPE_FORMAT" default:"json"`

	// Neck is the number of header rows (optional, 0 keeps the layout's value)
	Neck int `env:"SHEETSCRAPE_NECK"`

	// Layout is the path of a YAML layout file (optional)
	Layout string `env:"SHEETSCRAPE_LAYOUT"`

	// ParentSuffixes is a comma-separated list of accepted parent file suffixes (optional)
	ParentSuffixes []string `env:"SHEETSCRAPE_PARENT_SUFFIXES"`

	// ContinueOnError keeps going past sheets that fail to parse (default: false)
	ContinueOnError bool `env:"SHEETSCRAPE_CONTINUE_ON_ERROR" default:"false"`
}
