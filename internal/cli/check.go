package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/pylayout/internal/analyzer"
	"github.com/mvp-joe/pylayout/internal/config"
)

var (
	quietFlag   bool
	workersFlag int
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check declaration order in Python files",
	Long: `Check lints one file, or every Python file under a directory, for
declaration-order violations.

Examples:
  # Check the current directory recursively
  pylayout check

  # Check a single file
  pylayout check app/models.py

  # Check a project with 4 workers and no progress bar
  pylayout check ./src --workers 4 --quiet
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	checkCmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of parallel workers (0 = one per CPU)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	rootDir, files, err := resolveTarget(path)
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithFile(rootDir, cfgFile)
	if err != nil {
		return err
	}
	applyColorSetting(cfg)

	if files == nil {
		fd, err := analyzer.NewFileDiscovery(rootDir, cfg.Paths.Include, cfg.Paths.Ignore)
		if err != nil {
			return err
		}
		files, err = fd.Discover()
		if err != nil {
			return fmt.Errorf("failed to discover files: %w", err)
		}
	}

	if verbose {
		log.Printf("Checking %d files under %s", len(files), rootDir)
	}

	workers := workersFlag
	if workers == 0 {
		workers = cfg.Run.Workers
	}

	progress := NewCLIProgressReporter(quietFlag || verbose)
	runner := analyzer.NewRunner(analyzer.New(), workers, progress)

	results, err := runner.Run(ctx, files)
	if err != nil {
		return fmt.Errorf("check cancelled: %w", err)
	}

	reporter := analyzer.NewReporter(os.Stdout)
	for _, result := range results {
		reporter.Report(result)
	}
	if !quietFlag {
		reporter.Summary(results)
	}

	// Findings never affect the exit status; only operational failures do.
	return nil
}

// resolveTarget maps the positional path to a scan root and, for a single
// file, the fixed file list. A nil file list means "discover under root".
func resolveTarget(path string) (rootDir string, files []string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if info.IsDir() {
		return path, nil, nil
	}
	return filepath.Dir(path), []string{path}, nil
}

// applyColorSetting resolves the color switches; the flag wins over config.
func applyColorSetting(cfg *config.Config) {
	if noColorFlag || !cfg.Output.Color {
		color.NoColor = true
	}
}
