package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verbose     bool
	noColorFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pylayout",
	Short: "pylayout checks the order of Python code layout",
	Long: `pylayout is a structural linter for Python source files. It verifies
that declarations inside each scope appear in the canonical order:

  imports, nested classes, class variables, dunder methods,
  static methods, properties, public methods, private methods

and reports every place this order is violated. It does not modify code
and does not change its exit status based on findings.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pylayout.yml in the scanned root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
