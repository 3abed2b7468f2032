// Package format renders Markdown tables for the report synthesizer.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number   int // 1-based column index
	MaxWidth int // truncate or wrap content beyond this width (0 = unlimited)
}

// Table builds a GitHub-flavoured Markdown table. All reports in this
// module are Markdown, so there is no terminal/ASCII mode.
type Table struct {
	writer table.Writer
}

// NewTable returns an empty Markdown table builder.
func NewTable() *Table {
	return &Table{writer: table.NewWriter()}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row. Values are converted to strings via fmt Sprint.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// Columns applies per-column configuration.
func (t *Table) Columns(cfgs ...ColumnConfig) {
	goCfgs := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		goCfgs[i] = table.ColumnConfig{Number: c.Number, WidthMax: c.MaxWidth}
	}
	t.writer.SetColumnConfigs(goCfgs)
}

// String renders the table as Markdown.
func (t *Table) String() string {
	return t.writer.RenderMarkdown()
}

// Truncate shortens s to at most maxLen runes-worth of bytes, marking
// the cut with an ellipsis.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
