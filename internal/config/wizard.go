package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/navmark/internal/navmark"
)

// siteDirCandidates are output directories of common static site generators.
var siteDirCandidates = []string{"public", "_site", "dist", "build", "site", "out"}

// detectSiteDir returns the first well-known site output directory present
// in the working directory.
func detectSiteDir() string {
	for _, dir := range siteDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "public"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to navmark! Let's describe your site's menu.")
	fmt.Println()

	cfg := DefaultConfig()
	cfg.SiteDir = detectSiteDir()

	originPrompt := promptui.Prompt{
		Label:   "Site origin",
		Default: cfg.Origin,
		Validate: func(s string) error {
			_, err := navmark.ParseOrigin(s)
			return err
		},
	}
	origin, err := originPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	cfg.Origin = origin

	siteDirPrompt := promptui.Prompt{
		Label:   "Site directory",
		Default: cfg.SiteDir,
	}
	if cfg.SiteDir, err = siteDirPrompt.Run(); err != nil {
		return nil, fmt.Errorf("site directory: %w", err)
	}

	tagPrompt := promptui.Prompt{
		Label:    "Menu item element",
		Default:  cfg.Menu.Tag,
		Validate: nonBlank,
	}
	tag, err := tagPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("menu tag: %w", err)
	}
	cfg.Menu.Tag = strings.ToLower(strings.TrimSpace(tag))

	classPrompt := promptui.Prompt{
		Label:    "Menu item class",
		Default:  cfg.Menu.Class,
		Validate: nonBlank,
	}
	if cfg.Menu.Class, err = classPrompt.Run(); err != nil {
		return nil, fmt.Errorf("menu class: %w", err)
	}

	activePrompt := promptui.Prompt{
		Label:    "Active class",
		Default:  cfg.Menu.ActiveClass,
		Validate: nonBlank,
	}
	if cfg.Menu.ActiveClass, err = activePrompt.Run(); err != nil {
		return nil, fmt.Errorf("active class: %w", err)
	}

	urlPrompt := promptui.Select{
		Label: "How are pages served?",
		Items: []string{
			"pretty URLs — about/index.html is /about/",
			"file URLs   — about/index.html is /about/index.html",
		},
	}
	urlIdx, _, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("url style: %w", err)
	}
	cfg.PrettyURLs = urlIdx == 0

	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func nonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
