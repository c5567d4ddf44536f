package interactive

import (
	"io"
	"strings"
	"toolbox/internal/scrapers/quotes"
	"toolbox/internal/tasks"

	"github.com/jedib0t/go-pretty/v6/table"
)

const quoteColumnWidth = 60

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// RenderQuotes prints quotes as a numbered table.
func RenderQuotes(out io.Writer, items []quotes.Quote) {
	t := newTable(out)
	t.AppendHeader(table.Row{"#", "Quote", "Author", "Tags"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: quoteColumnWidth},
	})
	for i, q := range items {
		tags := "-"
		if len(q.Tags) > 0 {
			tags = strings.Join(q.Tags, ", ")
		}
		t.AppendRow(table.Row{i + 1, q.Text, q.Author, tags})
	}
	t.Render()
}

func RenderTasks(out io.Writer, items []tasks.Task) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Title", "Description", "Updated"})
	for _, task := range items {
		t.AppendRow(table.Row{
			task.ID,
			task.Title,
			task.Description,
			task.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}
