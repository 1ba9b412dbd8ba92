package table

import (
	pretty "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Preview renders the first n rows as a text table
func (t *Table) Preview(n int) string {
	columns := len(t.Columns)
	if columns == 0 {
		return ""
	}
	tw := pretty.NewWriter()
	tw.SetStyle(pretty.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(pretty.Row, columns)
	for i, column := range t.Columns {
		header[i] = column
	}
	tw.AppendHeader(header)

	for _, row := range t.Head(n).Rows {
		r := make(pretty.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]pretty.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		configs = append(configs, pretty.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
