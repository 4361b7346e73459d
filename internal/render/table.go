// Package render writes evaluations and catalog listings for the
// non-interactive commands.
package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat accepts table, markdown (or md) and json.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, markdown or json)", s)
	}
}

// ColumnConfig controls one column. Number is 1-based.
type ColumnConfig struct {
	Number   int
	Align    text.Align
	MaxWidth int
}

// Table is a thin wrapper over a go-pretty table writer.
type Table struct {
	writer   table.Writer
	markdown bool
}

// NewTable returns a table rendered as light box drawing or Markdown.
func NewTable(f Format) *Table {
	w := table.NewWriter()
	if f != FormatMarkdown {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, markdown: f == FormatMarkdown}
}

func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// Separator draws a rule before the next row.
func (t *Table) Separator() {
	t.writer.AppendSeparator()
}

func (t *Table) Title(s string) {
	t.writer.SetTitle(s)
}

func (t *Table) Columns(cfgs ...ColumnConfig) {
	out := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		out[i] = table.ColumnConfig{Number: c.Number, Align: c.Align, WidthMax: c.MaxWidth}
	}
	t.writer.SetColumnConfigs(out)
}

func (t *Table) String() string {
	if t.markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
