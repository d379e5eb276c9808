package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/sorttrace"
)

// Renderer writes a report in one output format.
type Renderer interface {
	Write(w io.Writer, r *Report) error
}

// NewRenderer returns the renderer for format: "csv", "json", "yaml",
// "table" or "xlsx". CSV, table and xlsx show the median of metric.
func NewRenderer(format string, metric Metric) (Renderer, error) {
	switch format {
	case "csv":
		return CSVRenderer{Metric: metric}, nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml", "yml":
		return YAMLRenderer{}, nil
	case "table", "":
		return TableRenderer{Metric: metric}, nil
	case "xlsx":
		return XLSXRenderer{Metric: metric}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// label returns the registry label of key, or key itself.
func label(key string) string {
	if e, err := sorttrace.Lookup(key); err == nil {
		return e.Label
	}

	return key
}

// CSVRenderer writes one line per size: n followed by the median of Metric
// for every algorithm. Missing cells are empty.
type CSVRenderer struct {
	Metric Metric
}

func (cr CSVRenderer) Write(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(r.Config.Algorithms)+1)
	header = append(header, "n")
	for _, key := range r.Config.Algorithms {
		header = append(header, fmt.Sprintf("%s (%s)", label(key), cr.Metric))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row.N))
		for _, key := range r.Config.Algorithms {
			rec = append(rec, cellValue(row, key, cr.Metric))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func cellValue(row Row, key string, m Metric) string {
	for _, c := range row.Cells {
		if c.Algorithm == key {
			return strconv.FormatFloat(c.Get(m).Median, 'f', -1, 64)
		}
	}

	return ""
}

// JSONRenderer writes the report as one JSON document.
type JSONRenderer struct{}

func (JSONRenderer) Write(w io.Writer, r *Report) error {
	return json.NewEncoder(w).Encode(r)
}

// YAMLRenderer writes the report as YAML with innermost sequences in flow
// style ([a, b, c]) and outer sequences expanded.
type YAMLRenderer struct{}

func (YAMLRenderer) Write(w io.Writer, r *Report) error {
	var node yaml.Node
	if err := node.Encode(r); err != nil {
		return err
	}
	flowInnerSequences(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(&node)
}

// flowInnerSequences marks every sequence that contains no nested
// sequence or mapping as flow style.
func flowInnerSequences(n *yaml.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.MappingNode:
		for _, c := range n.Content {
			flowInnerSequences(c)
		}
	case yaml.SequenceNode:
		flat := true
		for _, c := range n.Content {
			if c != nil && (c.Kind == yaml.SequenceNode || c.Kind == yaml.MappingNode) {
				flat = false
			}
			flowInnerSequences(c)
		}
		if flat {
			n.Style = yaml.FlowStyle
		}
	}
}

// TableRenderer writes an aligned text table of medians of Metric, one
// column per algorithm, followed by the fitted growth exponents.
type TableRenderer struct {
	Metric Metric
}

var lang = language.English

func (tr TableRenderer) Write(w io.Writer, r *Report) error {
	p := message.NewPrinter(lang)
	header := []string{"n"}
	for _, key := range r.Config.Algorithms {
		header = append(header, label(key))
	}
	rows := [][]string{header}
	for _, row := range r.Rows {
		line := []string{p.Sprintf("%d", row.N)}
		for _, key := range r.Config.Algorithms {
			line = append(line, tr.format(p, row, key))
		}
		rows = append(rows, line)
	}

	title := fmt.Sprintf("%s / %s / %d trials", tr.Metric, r.Config.Kind, r.Config.Trials)
	if r.Partial {
		title += " (partial)"
	}
	var b strings.Builder
	writeTable(&b, title, rows)

	if tr.Metric != Runtime && len(r.Growth) > 0 {
		b.WriteString("growth exponent (log-log fit):\n")
		for _, g := range r.Growth {
			f := g.Comparisons
			if tr.Metric == Writes {
				f = g.Writes
			}
			name := label(g.Algorithm)
			b.WriteString("  " + name + blank(labelWidth(r)-runewidth.StringWidth(name)))
			b.WriteString(p.Sprintf(" n^%.2f  (R² %.3f)\n", f.Exponent, f.R2))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func (tr TableRenderer) format(p *message.Printer, row Row, key string) string {
	for _, c := range row.Cells {
		if c.Algorithm != key {
			continue
		}
		s := c.Get(tr.Metric)
		if tr.Metric == Runtime {
			return p.Sprintf("%.3f ms", s.Median)
		}

		return p.Sprintf("%.0f", s.Median)
	}

	return "-"
}

func labelWidth(r *Report) int {
	w := 0
	for _, key := range r.Config.Algorithms {
		w = max(w, runewidth.StringWidth(label(key)))
	}

	return w
}

// writeTable renders rows (first row is the header) as a boxed table
// with right-aligned cells and a centred title.
func writeTable(b *strings.Builder, title string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	inner := 0
	for _, cw := range widths {
		inner += cw + 3
	}
	inner--
	if tw := runewidth.StringWidth(title) + 2; tw > inner {
		widths[len(widths)-1] += tw - inner
		inner = tw
	}

	divider := "+"
	for _, cw := range widths {
		divider += strings.Repeat("-", cw+2) + "+"
	}
	divider += "\n"

	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left
	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	for k, row := range rows {
		b.WriteString("|")
		for i, cell := range row {
			b.WriteString(" " + blank(widths[i]-runewidth.StringWidth(cell)) + cell + " |")
		}
		b.WriteString("\n")
		if k == 0 {
			b.WriteString(divider)
		}
	}
	b.WriteString(divider)
}

func blank(w int) string {
	if w < 1 {
		return ""
	}

	return strings.Repeat(" ", w)
}
