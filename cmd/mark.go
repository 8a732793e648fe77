package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/navmark/internal/progress"
	"github.com/ziadkadry99/navmark/internal/site"
)

var markCmd = &cobra.Command{
	Use:   "mark [dir]",
	Short: "Mark the active menu entry in every page of a static site",
	Long: `Walks a static site directory and, for every HTML page, adds the active
class to the menu entries whose link points at that page. Pages are
rewritten in place; pages that need no change are left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMark,
}

func init() {
	markCmd.Flags().Bool("dry-run", false, "report what would change without writing")
	markCmd.Flags().String("origin", "", "override the site origin used to resolve links")
	markCmd.Flags().Int("concurrency", 0, "override max_concurrency")
	rootCmd.AddCommand(markCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	dir, err := siteDir(args, cfg)
	if err != nil {
		return err
	}

	origin, ok, err := originFlag(cmd, cfg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("an origin is required: set origin in %s or pass --origin", cfgFile)
	}

	concurrency := cfg.MaxConcurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	p := site.NewProcessor(site.Options{
		Dir:         dir,
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
		PrettyURLs:  cfg.PrettyURLs,
		Origin:      origin,
		Selector:    cfg.Selector(),
		Concurrency: concurrency,
		DryRun:      dryRun,
		Logger:      log,
		Reporter:    progress.NewReporter(),
	})

	sum, runErr := p.Run(cmd.Context())
	if sum != nil {
		verb := "Marked"
		if dryRun {
			verb = "Would mark"
		}
		fmt.Printf("%s %d of %d pages in %s (%d failed)\n", verb, sum.Modified, sum.Files, dir, sum.Failed)
	}
	if runErr != nil {
		return fmt.Errorf("marking site: %w", runErr)
	}
	return nil
}
