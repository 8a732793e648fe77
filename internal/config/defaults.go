package config

import "slices"

// DefaultExcludes are glob patterns skipped when marking a site directory.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/*.min.html",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Origin: "http://localhost",
		Menu: MenuConfig{
			Tag:         "li",
			Class:       "menu",
			ActiveClass: "active",
		},
		SiteDir:        "public",
		Include:        []string{"**/*.html", "**/*.htm"},
		Exclude:        slices.Clone(DefaultExcludes),
		PrettyURLs:     true,
		MaxConcurrency: 8,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Server: ServerConfig{
			Port:    8080,
			Metrics: true,
		},
	}
}
