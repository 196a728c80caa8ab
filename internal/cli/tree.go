package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pylayout/internal/analyzer"
)

// treeCmd represents the tree command.
var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the classified declaration tree of one Python file",
	Long: `Tree parses a single Python file and prints its declaration tree as
"LINE RANK TYPE NAME" rows, indented by nesting level. Useful for
understanding why check flags (or doesn't flag) a declaration.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	node, err := analyzer.New().Tree(args[0])
	if err != nil {
		return err
	}
	fmt.Println(node.PrettyPrint())
	return nil
}
