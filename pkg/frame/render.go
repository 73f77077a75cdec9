package frame

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// previewRows caps how many rows String renders.
const previewRows = 10

// String renders a preview of the table in a light box style. Headers carry
// the element kind of each column and output stops after previewRows rows;
// the footer always reports the full row count.
func (t *Table) String() string {
	if t.Width() == 0 {
		return "(0 rows)\n"
	}

	var sb strings.Builder
	w := table.NewWriter()
	w.SetOutputMirror(&sb)
	w.SetStyle(table.StyleLight)

	header := make(table.Row, t.Width())
	for i, c := range t.cols {
		header[i] = fmt.Sprintf("%s (%s)", c.Name(), c.Kind())
	}
	w.AppendHeader(header)

	limit := min(t.Height(), previewRows)
	for i := 0; i < limit; i++ {
		row := make(table.Row, t.Width())
		for j, c := range t.cols {
			row[j] = c.Cell(i).String()
		}
		w.AppendRow(row)
	}
	w.Render()

	fmt.Fprintf(&sb, "(%d rows)\n", t.Height())
	return sb.String()
}
