package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/navmark/internal/htmlnav"
	"github.com/ziadkadry99/navmark/internal/navmark"
	"github.com/ziadkadry99/navmark/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.html>",
	Short: "Show how each menu entry of a page resolves",
	Long: `Parses one HTML page and prints every menu entry with its resolved path
and whether it would be marked active. The page path defaults to the
file's path relative to the site directory; use --path to override it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("path", "", "current page path to compare against")
	checkCmd.Flags().String("origin", "", "override the site origin used to resolve links")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	origin, ok, err := originFlag(cmd, cfg)
	if err != nil {
		return err
	}
	if !ok {
		origin, _ = navmark.ParseOrigin("http://localhost")
	}

	file := args[0]
	pagePath, _ := cmd.Flags().GetString("path")
	if pagePath == "" {
		pagePath = filePagePath(cfg.SiteDir, file, cfg.PrettyURLs)
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := htmlnav.Parse(f, cfg.Selector())
	if err != nil {
		return err
	}
	return printCheck(cmd.OutOrStdout(), doc, origin, pagePath)
}

// filePagePath derives the page path of file from its location in siteDir.
// Files outside siteDir are treated as if they sat at its root.
func filePagePath(siteDir, file string, pretty bool) string {
	rel, err := filepath.Rel(siteDir, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(file)
	}
	return site.PagePath(rel, pretty)
}

func printCheck(w io.Writer, doc *htmlnav.Document, origin navmark.Origin, pagePath string) error {
	entries := doc.Entries()
	fmt.Fprintf(w, "Page path: %s\n", pagePath)
	fmt.Fprintf(w, "Origin:    %s\n", origin.String())
	fmt.Fprintf(w, "Entries:   %d\n\n", len(entries))

	active := 0
	for _, r := range origin.ResolveAll(entries) {
		switch {
		case !r.OK():
			fmt.Fprintf(w, "  [%d] %-30q  skipped: %v\n", r.Entry.Index, r.Entry.Href, r.Err)
		case r.Path == pagePath:
			active++
			fmt.Fprintf(w, "  [%d] %-30q -> %s  ACTIVE\n", r.Entry.Index, r.Entry.Href, r.Path)
		default:
			fmt.Fprintf(w, "  [%d] %-30q -> %s\n", r.Entry.Index, r.Entry.Href, r.Path)
		}
	}
	_, err := fmt.Fprintf(w, "\n%d active\n", active)
	return err
}
