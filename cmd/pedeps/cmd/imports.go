package cmd

import (
	"path/filepath"

	"github.com/dbsmedya/pedeps/internal/peimport"
	"github.com/dbsmedya/pedeps/internal/report"
	"github.com/spf13/cobra"
)

var importsSimple bool

var importsCmd = &cobra.Command{
	Use:   "imports <file>",
	Short: "Dump the import table of a single PE file",
	Long: `Imports parses one executable or DLL and prints its import and
delay-load import tables without resolving dependencies recursively.

By default every imported symbol is listed with its ordinal and the
virtual address of its import-address-table slot. With --simple only
the imported module names are shown.

Example:
  pedeps imports program.exe
  pedeps imports program.exe --simple`,
	Args: cobra.ExactArgs(1),
	RunE: runImports,
}

func init() {
	importsCmd.Flags().BoolVarP(&importsSimple, "simple", "s", false,
		"Show only module names (no symbols)")

	rootCmd.AddCommand(importsCmd)
}

func runImports(cmd *cobra.Command, args []string) error {
	target := args[0]
	if err := checkTargetFile(target); err != nil {
		return err
	}

	_, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.WithFile(target).Debug("Extracting import table")

	set, err := peimport.NewExtractor().Extract(target)
	if err != nil {
		return err
	}

	name := filepath.Base(target)
	if importsSimple {
		printLines(report.SimpleReport(name, set))
	} else {
		printLines(report.ImportReport(name, set, true))
	}
	return nil
}
