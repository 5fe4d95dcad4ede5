package logger

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Table struct {
	tw table.Writer
}

func NewTable(headers []string, out io.Writer) *Table {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	return &Table{tw: tw}
}

func (t *Table) AddRow(cells ...string) {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	t.tw.AppendRow(row)
}

func (t *Table) Print() {
	t.tw.Render()
}
