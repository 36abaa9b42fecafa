package export

import (
	"fmt"
	"io"

	"outlands-pricer/internal/pricing"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable prints the run summary.
func RenderTable(w io.Writer, rows []pricing.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row(header))
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, fmt.Sprintf("%.2f", r.AveragePrice), r.Count})
	}
	t.AppendFooter(table.Row{"", "Items", len(rows)})
	t.Render()
}
