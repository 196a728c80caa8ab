package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pylayout/internal/analyzer"
	"github.com/mvp-joe/pylayout/internal/config"
	"github.com/mvp-joe/pylayout/internal/watcher"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-check Python files as they change",
	Long: `Watch performs an initial check of the directory, then watches it
recursively and re-checks changed Python files after each save. Runs until
interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootDir := "."
	if len(args) > 0 {
		rootDir = args[0]
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("watch requires a directory, got %s", rootDir)
	}

	cfg, err := config.LoadWithFile(rootDir, cfgFile)
	if err != nil {
		return err
	}
	applyColorSetting(cfg)

	anz := analyzer.New()
	runner := analyzer.NewRunner(anz, cfg.Run.Workers, nil)
	reporter := analyzer.NewReporter(os.Stdout)

	// Initial full pass before entering watch mode.
	fd, err := analyzer.NewFileDiscovery(rootDir, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return err
	}
	files, err := fd.Discover()
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	results, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}
	for _, result := range results {
		reporter.Report(result)
	}
	reporter.Summary(results)
	log.Printf("Watching %s for changes...", rootDir)

	w, err := watcher.New(rootDir)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	err = w.Run(ctx, func(changed []string) {
		sort.Strings(changed)
		for _, path := range changed {
			if _, err := os.Stat(path); err != nil {
				continue // deleted between event and re-check
			}
			result := anz.AnalyzeFile(path)
			reporter.Report(result)
			if result.Err == nil && len(result.Issues) == 0 && verbose {
				log.Printf("%s: clean", path)
			}
		}
	})
	if errors.Is(err, context.Canceled) {
		log.Println("Watch stopped")
		return nil
	}
	return err
}
