package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/navmark/internal/htmlnav"
	"github.com/ziadkadry99/navmark/internal/navmark"
)

// EnvPrefix is the prefix of environment variable overrides. Nested keys
// use a double underscore: NAVMARK_MENU__ACTIVE_CLASS -> menu.active_class.
const EnvPrefix = "NAVMARK_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NAVMARK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Origin != "" {
		if _, err := navmark.ParseOrigin(c.Origin); err != nil {
			return fmt.Errorf("origin: %w", err)
		}
	}

	if err := validName("menu.tag", c.Menu.Tag); err != nil {
		return err
	}
	if c.Menu.Tag != strings.ToLower(c.Menu.Tag) {
		return fmt.Errorf("menu.tag %q must be lower case", c.Menu.Tag)
	}
	if err := validName("menu.class", c.Menu.Class); err != nil {
		return err
	}
	if err := validName("menu.active_class", c.Menu.ActiveClass); err != nil {
		return err
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}

	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}

func validName(key, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", key)
	}
	if strings.ContainsFunc(v, func(r rune) bool { return r <= ' ' }) {
		return fmt.Errorf("%s %q must not contain whitespace", key, v)
	}
	return nil
}

// Selector returns the htmlnav selector described by the menu settings.
func (c *Config) Selector() htmlnav.Selector {
	return htmlnav.Selector{
		Tag:         c.Menu.Tag,
		MenuClass:   c.Menu.Class,
		ActiveClass: c.Menu.ActiveClass,
	}
}

// ParsedOrigin returns the configured origin. ok is false when none is set.
func (c *Config) ParsedOrigin() (o navmark.Origin, ok bool, err error) {
	if c.Origin == "" {
		return navmark.Origin{}, false, nil
	}
	o, err = navmark.ParseOrigin(c.Origin)
	if err != nil {
		return navmark.Origin{}, false, err
	}
	return o, true, nil
}
