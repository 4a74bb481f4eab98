package ui

import (
	"io"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderVersions writes records as a table, channels first then newest
// releases.
func RenderVersions(w io.Writer, records []fvm.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Version", "Channel", "Global"})

	for _, r := range fvm.SortByVersion(records) {
		global := ""
		if r.IsGlobal {
			global = "●"
		}
		channel := r.Channel
		if channel == "" {
			channel = "-"
		}
		t.AppendRow(table.Row{r.Name, channel, global})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
