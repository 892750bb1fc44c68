package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dbsmedya/pedeps/internal/locate"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [file]",
	Short: "Show the effective module search path",
	Long: `Paths displays the directories that will be consulted when locating
modules, in priority order. When a file is given, its own directory
leads the list exactly as it does during resolution.

Example:
  pedeps paths
  pedeps paths program.exe -p C:\MyDLLs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	var searchPath []string
	if len(args) == 1 {
		target := args[0]
		if err := checkTargetFile(target); err != nil {
			return err
		}
		abs, err := filepath.Abs(target)
		if err != nil {
			abs = target
		}
		searchPath = locate.BuildSearchPath(filepath.Dir(abs),
			cfg.Search.Paths, cfg.Search.SystemPaths)
	} else {
		searchPath = append(searchPath, cfg.Search.Paths...)
		searchPath = append(searchPath, cfg.Search.SystemPaths...)
	}

	if len(searchPath) == 0 {
		fmt.Fprintln(outputWriter, "No search directories configured")
		return nil
	}

	fmt.Fprintln(outputWriter, "Module search path (first match wins):")
	fmt.Fprintln(outputWriter)
	for i, dir := range searchPath {
		fmt.Fprintf(outputWriter, "  [%d] %s\n", i+1, dir)
	}
	return nil
}
