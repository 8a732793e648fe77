package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "navmark",
	Short: "Highlight the active entry of a site's navigation menu",
	Long: `navmark finds the menu entries of an HTML page (li.menu by default),
resolves each entry's link against the site origin and adds the "active"
class to the entries that point at the page itself.

It can rewrite a static site directory once at build time, or serve the
directory and mark pages as they are requested.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".navmark.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

