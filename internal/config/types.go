package config

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level navmark configuration, corresponding to .navmark.yml.
type Config struct {
	// Origin is the base every href is resolved against, e.g. https://example.com.
	// The serve command falls back to the request's own origin when empty.
	Origin         string       `yaml:"origin" koanf:"origin"`
	Menu           MenuConfig   `yaml:"menu" koanf:"menu"`
	SiteDir        string       `yaml:"site_dir" koanf:"site_dir"`
	Include        []string     `yaml:"include" koanf:"include"`
	Exclude        []string     `yaml:"exclude" koanf:"exclude"`
	PrettyURLs     bool         `yaml:"pretty_urls" koanf:"pretty_urls"`
	MaxConcurrency int          `yaml:"max_concurrency" koanf:"max_concurrency"`
	Log            LogConfig    `yaml:"log" koanf:"log"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
}

// MenuConfig describes the menu markup.
type MenuConfig struct {
	Tag         string `yaml:"tag" koanf:"tag"`
	Class       string `yaml:"class" koanf:"class"`
	ActiveClass string `yaml:"active_class" koanf:"active_class"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// ServerConfig holds settings for navmark serve.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
	Metrics  bool `yaml:"metrics" koanf:"metrics"`
}
