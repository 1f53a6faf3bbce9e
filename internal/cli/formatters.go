package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tween-tui/tween/pkg/css"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 72))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// LayerRow renders one transition layer as table columns: index, property,
// duration, delay, timing. Absent fields show as "-".
func LayerRow(index int, layer css.Layer) []string {
	props := css.Extract(layer)
	show := func(v *css.Value) string {
		if v == nil {
			return "-"
		}
		return v.String()
	}
	return []string{
		fmt.Sprintf("%d", index+1),
		show(props.Property),
		show(props.Duration),
		show(props.Delay),
		show(props.Timing),
	}
}
