package report

import (
	"fmt"
	"sort"

	"github.com/dbsmedya/pedeps/internal/peimport"
)

// ImportReport formats the import table of a single file. With showSymbols
// the per-symbol ordinal, IAT slot address, and name are listed under each
// module; otherwise only module names and totals appear.
func ImportReport(fileName string, set *peimport.ImportSet, showSymbols bool) []string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, Header(fmt.Sprintf("Import Table for: %s", fileName))...)
	lines = append(lines, "")

	if set.Empty() {
		lines = append(lines, "No import table found (statically linked or packed?)")
		return lines
	}

	totalModules := 0
	for el := set.Direct.Front(); el != nil; el = el.Next() {
		totalModules++
		lines = append(lines, fmt.Sprintf("[%s]", el.Key))
		if showSymbols {
			lines = append(lines, symbolLines(el.Value)...)
		}
		lines = append(lines, "")
	}

	if set.Delayed.Len() > 0 {
		lines = append(lines, Header("Delay-Load Imports:")...)
		lines = append(lines, "")
		for el := set.Delayed.Front(); el != nil; el = el.Next() {
			totalModules++
			lines = append(lines, fmt.Sprintf("[%s] (delay-loaded)", el.Key))
			if showSymbols {
				lines = append(lines, symbolLines(el.Value)...)
			}
			lines = append(lines, "")
		}
	}

	summary := fmt.Sprintf("Summary: %d modules, %d imported symbols", totalModules, set.SymbolCount())
	lines = append(lines, Header(summary)...)
	return lines
}

func symbolLines(syms []peimport.Symbol) []string {
	lines := make([]string, 0, len(syms))
	for _, sym := range syms {
		if sym.ByOrdinal {
			lines = append(lines, fmt.Sprintf("    %5d  0x%08X  (ordinal only)", sym.Ordinal, sym.Address))
		} else {
			lines = append(lines, fmt.Sprintf("    %5s  0x%08X  %s", "-", sym.Address, sym.Name))
		}
	}
	return lines
}

// SimpleReport lists only the module names a file imports directly, sorted,
// with delay-loaded modules in their own section.
func SimpleReport(fileName string, set *peimport.ImportSet) []string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Direct dependencies of %s:", fileName))
	lines = append(lines, "")

	for _, name := range sortedKeys(set.Direct.Keys()) {
		lines = append(lines, "  "+name)
	}

	if set.Delayed.Len() > 0 {
		lines = append(lines, "")
		lines = append(lines, "Delay-loaded:")
		for _, name := range sortedKeys(set.Delayed.Keys()) {
			lines = append(lines, "  "+name)
		}
	}
	return lines
}

func sortedKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}
