package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Table lays out rows in aligned columns, measuring cells by display width.
type Table struct {
	headers   []string
	rows      [][]string
	colWidths []int
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = runewidth.StringWidth(h)
	}
	return &Table{
		headers:   headers,
		colWidths: colWidths,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(values ...string) {
	for len(values) < len(t.headers) {
		values = append(values, "")
	}
	if len(values) > len(t.headers) {
		values = values[:len(t.headers)]
	}

	t.rows = append(t.rows, values)

	for i, v := range values {
		if w := runewidth.StringWidth(v); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
}

// Render writes the table to w
func (t *Table) Render(w io.Writer) {
	t.printRow(w, t.headers)

	rules := make([]string, len(t.colWidths))
	for i, width := range t.colWidths {
		rules[i] = strings.Repeat("─", width)
	}
	t.printRow(w, rules)

	for _, row := range t.rows {
		t.printRow(w, row)
	}
}

func (t *Table) printRow(w io.Writer, values []string) {
	cells := make([]string, len(values))
	for i, val := range values {
		cells[i] = runewidth.FillRight(val, t.colWidths[i])
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, columnGap), " "))
}
