package fvm

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	globalGlyph = "●"
	globalTag   = "(global)"
)

// bannerPrefixes start lines fvm prints around the table.
var bannerPrefixes = []string{"⚙", "FVM", "Cache directory", "Directory Size", "Project"}

// ParseTable parses the human-readable output of `fvm list`. It tolerates
// ANSI colour codes, box-drawing borders, banners and the header row.
// Output with no version rows yields an empty slice.
func ParseTable(raw string) []Record {
	records := []Record{}
	// Newer fvm releases print the marker glyph in both a Global and a Local
	// column; once the header is seen only the Global column counts.
	globalCol := -1
	for _, line := range strings.Split(ansi.Strip(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isBanner(line) || isBorder(line) {
			continue
		}
		if col, ok := headerGlobalColumn(line); ok {
			globalCol = col
			continue
		}
		if rec, ok := parseTableLine(line, globalCol); ok {
			records = append(records, rec)
		}
	}
	return records
}

// headerGlobalColumn recognises the header row and returns the index of its
// Global column (-1 when absent).
func headerGlobalColumn(line string) (int, bool) {
	cells, ok := splitCells(line)
	if !ok {
		return 0, false
	}
	first := strings.TrimSpace(cells[0])
	if !strings.EqualFold(first, "version") && !strings.EqualFold(first, "name") {
		return 0, false
	}
	for i, c := range cells {
		if strings.EqualFold(strings.TrimSpace(c), "global") {
			return i, true
		}
	}
	return -1, true
}

func parseTableLine(line string, globalCol int) (Record, bool) {
	rec := Record{
		IsGlobal: strings.Contains(line, globalGlyph) || strings.Contains(line, globalTag),
	}

	if cells, ok := splitCells(line); ok {
		rec.Name = cleanName(cells[0])
		if globalCol >= 0 && globalCol < len(cells) {
			rec.IsGlobal = strings.Contains(cells[globalCol], globalGlyph) || strings.Contains(line, globalTag)
		}
		if len(cells) > 1 {
			if c := strings.TrimSpace(cells[1]); IsChannel(c) {
				rec.Channel = c
			}
		}
	} else {
		// Without separators the line must lead with something version-shaped,
		// otherwise it is prose around the listing.
		fields := strings.Fields(cleanName(line))
		if len(fields) == 0 || !looksLikeVersion(fields[0]) {
			return Record{}, false
		}
		rec.Name = fields[0]
	}

	if rec.Name == "" {
		return Record{}, false
	}
	return rec, true
}

// splitCells returns the cells enclosed by vertical separators. At least two
// separators are required.
func splitCells(line string) ([]string, bool) {
	sep := "│"
	if !strings.Contains(line, sep) {
		sep = "|"
	}
	parts := strings.Split(line, sep)
	if len(parts) < 3 {
		return nil, false
	}
	return parts[1 : len(parts)-1], true
}

func cleanName(s string) string {
	s = strings.ReplaceAll(s, globalTag, "")
	s = strings.ReplaceAll(s, globalGlyph, "")
	return strings.TrimSpace(s)
}

func isBanner(line string) bool {
	for _, p := range bannerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// isBorder reports whether line holds nothing but table-drawing characters.
func isBorder(line string) bool {
	for _, r := range line {
		switch {
		case r >= 0x2500 && r <= 0x257F:
		case r == '-' || r == '+' || r == '=' || r == '|' || r == ' ':
		default:
			return false
		}
	}
	return true
}
