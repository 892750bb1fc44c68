package report

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/pedeps/internal/depgraph"
)

// FlatReport formats a flat collection result, partitioned into found and
// not-found groups. Found module names are padded to a common width so the
// resolved paths line up.
func FlatReport(rootName string, records []depgraph.Record) []string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, Header(fmt.Sprintf("All Dependencies for: %s", rootName))...)
	lines = append(lines, "")

	var found, notFound []depgraph.Record
	for _, rec := range records {
		if rec.Found {
			found = append(found, rec)
		} else {
			notFound = append(notFound, rec)
		}
	}

	nameWidth := 0
	for _, rec := range found {
		if w := runewidth.StringWidth(rec.Name); w > nameWidth {
			nameWidth = w
		}
	}

	lines = append(lines, fmt.Sprintf("Found (%d):", len(found)))
	for _, rec := range found {
		padding := nameWidth - runewidth.StringWidth(rec.Name)
		lines = append(lines, fmt.Sprintf("  %s%s  %s",
			rec.Name, spaces(padding), rec.Path))
	}

	if len(notFound) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Not Found (%d):", len(notFound)))
		for _, rec := range notFound {
			lines = append(lines, "  "+color.Red.Sprint(rec.Name))
		}
	}

	lines = append(lines, "")
	lines = append(lines, Header(fmt.Sprintf("Total: %d unique modules", len(records)))...)
	return lines
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}
