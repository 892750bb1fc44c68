package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dbsmedya/pedeps/internal/depgraph"
	"github.com/dbsmedya/pedeps/internal/peimport"
	"github.com/dbsmedya/pedeps/internal/report"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Show the recursive dependency tree of a PE file",
	Long: `Tree resolves every module the file imports, directly or through
delay loading, locates each one on the search path, and prints the full
dependency tree.

The search path is: the file's own directory, then directories given
with --path or configured under search.paths, then the system
directories. Cycles, missing modules, unparsable modules, and the depth
limit are reported inline on the affected node.

Example:
  pedeps tree program.exe
  pedeps tree program.exe -p C:\MyDLLs --max-depth 6`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	target := args[0]
	if err := checkTargetFile(target); err != nil {
		return err
	}

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	builder := depgraph.NewBuilder(peimport.NewExtractor(),
		cfg.Search.Paths, cfg.Search.SystemPaths, log)
	builder.SetMaxDepth(cfg.Resolve.MaxDepth)

	log.WithFile(target).Debugw("Building dependency tree",
		"max_depth", cfg.Resolve.MaxDepth)

	root := builder.Build(target)

	fmt.Fprintln(outputWriter)
	printLines(report.Header(fmt.Sprintf("Dependency Tree for: %s", filepath.Base(target))))
	printLines(report.RenderTree(root))
	return nil
}
