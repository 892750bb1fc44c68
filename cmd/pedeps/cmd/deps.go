package cmd

import (
	"path/filepath"

	"github.com/dbsmedya/pedeps/internal/depgraph"
	"github.com/dbsmedya/pedeps/internal/peimport"
	"github.com/dbsmedya/pedeps/internal/report"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps <file>",
	Short: "List all transitive dependencies of a PE file",
	Long: `Deps resolves the complete set of modules reachable from the file
and prints them as a flat, deduplicated list partitioned into found and
not-found groups. Each unique module name is resolved exactly once,
so cyclic dependency graphs terminate naturally.

Example:
  pedeps deps program.exe
  pedeps deps program.exe -p C:\MyDLLs`,
	Args: cobra.ExactArgs(1),
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	target := args[0]
	if err := checkTargetFile(target); err != nil {
		return err
	}

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	collector := depgraph.NewCollector(peimport.NewExtractor(),
		cfg.Search.Paths, cfg.Search.SystemPaths, log)

	log.WithFile(target).Debug("Collecting flat dependency set")

	records := collector.Collect(target)
	printLines(report.FlatReport(filepath.Base(target), records))
	return nil
}
