package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// TableCellSchema sizes table cells.
var TableCellSchema = variant.Must(variant.New("table-cell",
	"whitespace-nowrap text-body-sm text-text-primary",
	variant.Axis{
		Name:    "density",
		Default: "comfortable",
		Options: []variant.Option{
			{Key: "comfortable", Classes: "px-6 py-4"},
			{Key: "compact", Classes: "px-3 py-2"},
		},
	},
	variant.BoolAxis("header", false, "text-label-md uppercase tracking-wider text-text-secondary", ""),
))

// Column is a table header.
type Column struct {
	Header string
	Class  string
}

// Row is one table row; cells align with the columns.
type Row struct {
	Key   string
	Cells []templ.Component
}

// TableProps configures a Table.
type TableProps struct {
	ID      string
	Density string
	Columns []Column
	Rows    []Row
	// Empty is shown in a single spanning cell when there are no rows.
	Empty string
}

// Table renders a data table.
func Table(p TableProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		headerClasses := make([]string, len(p.Columns))
		cellClasses := make([]string, len(p.Columns))
		for i, col := range p.Columns {
			var err error
			if headerClasses[i], err = TableCellSchema.Resolve(variant.Selection{"density": p.Density, "header": variant.True}, "text-left", col.Class); err != nil {
				return err
			}
			if cellClasses[i], err = TableCellSchema.Resolve(variant.Selection{"density": p.Density}, col.Class); err != nil {
				return err
			}
		}

		m := markup.New(ctx, w)
		m.Open("div", markup.Class("overflow-x-auto"), markup.Opt("id", p.ID))
		m.Open("table", markup.Class("min-w-full divide-y divide-border-primary"))
		m.Open("thead", markup.Class("bg-background-secondary"))
		m.Open("tr")
		for i, col := range p.Columns {
			m.Element("th", col.Header, markup.Class(headerClasses[i]), markup.A("scope", "col"))
		}
		m.Close("tr")
		m.Close("thead")
		m.Open("tbody", markup.Class("divide-y divide-border-primary bg-background-primary"))
		if len(p.Rows) == 0 {
			m.Open("tr")
			m.Open("td", markup.Class("px-6 py-8 text-center text-body-sm text-text-muted"), markup.A("colspan", itoa(len(p.Columns))))
			m.Text(p.Empty)
			m.Close("td")
			m.Close("tr")
		}
		for _, row := range p.Rows {
			m.Open("tr", markup.Class("hover:bg-background-secondary"), markup.Opt("data-row", row.Key))
			for i, cell := range row.Cells {
				class := ""
				if i < len(cellClasses) {
					class = cellClasses[i]
				}
				m.Open("td", markup.Class(class))
				m.Render(cell)
				m.Close("td")
			}
			m.Close("tr")
		}
		m.Close("tbody")
		m.Close("table")
		m.Close("div")
		return m.Err()
	})
}
