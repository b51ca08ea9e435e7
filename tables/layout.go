package tables

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Layout classifies the shape of a table's cell arrangement.
type Layout int

const (
	// LayoutSingleHeader is the default: one header row, every other row
	// repeating the same column structure.
	LayoutSingleHeader Layout = iota

	// LayoutTwoAxis tables carry both a column-header row and a row-header
	// column; a cell's meaning depends on both.
	LayoutTwoAxis

	// LayoutNumberedRows tables number their rows in the first column.
	LayoutNumberedRows
)

func (l Layout) String() string {
	switch l {
	case LayoutTwoAxis:
		return "two_axis"
	case LayoutNumberedRows:
		return "numbered_rows"
	default:
		return "single_header"
	}
}

// numberedPattern matches row numbers such as "3" or "3.".
var numberedPattern = regexp.MustCompile(`^\d+\.?$`)

// Config holds the layout engine's clustering thresholds.
type Config struct {
	// RowTolerancePx is the vertical band within which fields are grouped
	// into the same row.
	RowTolerancePx float64

	// LeftMarginPx bounds the x-position of row-header candidates; only
	// fields starting left of this are considered row labels.
	LeftMarginPx float64
}

// DefaultConfig returns the engine's default thresholds.
func DefaultConfig() Config {
	return Config{
		RowTolerancePx: 5.0,
		LeftMarginPx:   200.0,
	}
}

// Engine infers table layout shapes and synthesizes context labels for
// empty cells. The inference is heuristic and best-effort: it guesses
// row/column semantics from coordinates alone and is never verified against
// ground truth.
type Engine struct {
	config Config
	logger *slog.Logger
}

// NewEngine creates a layout engine with default configuration.
func NewEngine() *Engine {
	return &Engine{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
}

// Configure sets the engine configuration after validating the thresholds.
func (e *Engine) Configure(config Config) error {
	if config.RowTolerancePx <= 0 {
		return fmt.Errorf("row tolerance must be positive, got %g", config.RowTolerancePx)
	}
	if config.LeftMarginPx <= 0 {
		return fmt.Errorf("left margin must be positive, got %g", config.LeftMarginPx)
	}
	e.config = config
	return nil
}

// WithLogger replaces the engine's logger.
func (e *Engine) WithLogger(logger *slog.Logger) *Engine {
	e.logger = logger
	return e
}

// row is a cluster of fields sharing a vertical band.
type row struct {
	y      float64
	fields []Field
}

// hasTitle reports whether the row contains a title-class field.
func (r row) hasTitle() bool {
	for _, f := range r.fields {
		if f.Type == model.ClassTitle {
			return true
		}
	}
	return false
}

// clusterRows groups fields into rows by y-coordinate. Grouping is greedy:
// a field joins the first existing row within the tolerance band, otherwise
// it starts a new row. Rows come back sorted top to bottom.
func (e *Engine) clusterRows(fields []Field) []row {
	var rows []row
	for _, f := range fields {
		grouped := false
		for i := range rows {
			if math.Abs(f.Box.Y-rows[i].y) < e.config.RowTolerancePx {
				rows[i].fields = append(rows[i].fields, f)
				grouped = true
				break
			}
		}
		if !grouped {
			rows = append(rows, row{y: f.Box.Y, fields: []Field{f}})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].y < rows[j].y })
	for i := range rows {
		sort.Slice(rows[i].fields, func(a, b int) bool {
			return rows[i].fields[a].Box.X < rows[i].fields[b].Box.X
		})
	}
	return rows
}

// headerRow returns the index of the candidate header row: the first row,
// top to bottom, that carries at least one non-empty field and no title.
// Returns -1 when no row qualifies.
func headerRow(rows []row) int {
	for i, r := range rows {
		if r.hasTitle() {
			continue
		}
		for _, f := range r.fields {
			if f.Type == model.ClassField && strings.TrimSpace(f.Text) != "" {
				return i
			}
		}
	}
	return -1
}

// columnHeader is one header cell and its x position.
type columnHeader struct {
	x    float64
	text string
}

func columnHeaders(r row) []columnHeader {
	var headers []columnHeader
	for _, f := range r.fields {
		if f.Type == model.ClassField && strings.TrimSpace(f.Text) != "" {
			headers = append(headers, columnHeader{x: f.Box.X, text: strings.TrimSpace(f.Text)})
		}
	}
	return headers
}

// rowLabel returns the text of the row's leftmost non-empty field within the
// left margin, or "".
func (e *Engine) rowLabel(r row) string {
	label := ""
	minX := math.Inf(1)
	for _, f := range r.fields {
		text := strings.TrimSpace(f.Text)
		if f.Type != model.ClassField || text == "" {
			continue
		}
		if f.Box.X < e.config.LeftMarginPx && f.Box.X < minX {
			minX = f.Box.X
			label = text
		}
	}
	return label
}

// InferLayout classifies the table's shape from its field positions.
//
// Numbered first columns are tested before the two-axis test because a
// numbered column always looks like a populated row-header axis; without
// that ordering LayoutNumberedRows would be unreachable.
func (e *Engine) InferLayout(fields []Field) Layout {
	rows := e.clusterRows(fields)
	hdr := headerRow(rows)
	if hdr < 0 {
		return LayoutSingleHeader
	}

	var firstColumn []string
	for i, r := range rows {
		if i == hdr || r.hasTitle() {
			continue
		}
		if label := e.rowLabel(r); label != "" {
			firstColumn = append(firstColumn, label)
		}
	}
	if len(firstColumn) == 0 {
		return LayoutSingleHeader
	}

	numbered := true
	for _, text := range firstColumn {
		if !numberedPattern.MatchString(text) {
			numbered = false
			break
		}
	}
	if numbered {
		return LayoutNumberedRows
	}

	distinct := make(map[string]struct{})
	for _, text := range firstColumn {
		distinct[text] = struct{}{}
	}
	if len(distinct) >= 1 && len(columnHeaders(rows[hdr])) > 0 {
		return LayoutTwoAxis
	}

	return LayoutSingleHeader
}

// SynthesizeContext produces a context label for every empty field in the
// table, keyed by detection id. The label is positional only: the nearest
// column header combined with the row's label, index or number, formatted
// per the table's layout. Tables without a recognizable header row yield an
// empty map, and fields whose position resolves to no header fall back to
// "Unknown field".
func (e *Engine) SynthesizeContext(t *Table, layout Layout) map[string]string {
	contexts := make(map[string]string)

	rows := e.clusterRows(t.Fields)
	hdr := headerRow(rows)
	if hdr < 0 {
		e.logger.Warn("no header row found, skipping context synthesis",
			"table_id", t.DetectionID)
		return contexts
	}
	headers := columnHeaders(rows[hdr])
	if len(headers) == 0 {
		return contexts
	}

	// Row labels, with nearest-row inheritance for two-axis tables: a row
	// missing its own header borrows the label of the vertically closest
	// row that has one.
	labels := make(map[int]string)
	for i, r := range rows {
		if i == hdr {
			continue
		}
		if label := e.rowLabel(r); label != "" {
			labels[i] = label
		}
	}
	if layout == LayoutTwoAxis {
		for i, r := range rows {
			if i == hdr {
				continue
			}
			if _, ok := labels[i]; ok {
				continue
			}
			bestDist := math.Inf(1)
			for j, other := range rows {
				if _, ok := labels[j]; !ok || j == i {
					continue
				}
				if dist := math.Abs(other.y - r.y); dist < bestDist {
					bestDist = dist
					labels[i] = labels[j]
				}
			}
		}
	}

	dataIndex := 0
	for i, r := range rows {
		if i == hdr || r.hasTitle() {
			continue
		}
		dataIndex++

		for _, f := range r.fields {
			if f.Type != model.ClassField || strings.TrimSpace(f.Text) != "" {
				continue
			}
			header := nearestHeader(headers, f.Box.X)
			if header == "" {
				contexts[f.ID] = "Unknown field"
				continue
			}

			switch layout {
			case LayoutTwoAxis:
				if label, ok := labels[i]; ok {
					contexts[f.ID] = fmt.Sprintf("%s %s", label, header)
				} else {
					contexts[f.ID] = "Unknown field"
				}
			case LayoutNumberedRows:
				if number := strings.TrimSuffix(labels[i], "."); number != "" {
					contexts[f.ID] = fmt.Sprintf("%s%s", header, number)
				} else {
					contexts[f.ID] = fmt.Sprintf("%s%d", header, dataIndex)
				}
			default:
				if label, ok := labels[i]; ok {
					contexts[f.ID] = fmt.Sprintf("%s - %s", label, header)
				} else {
					contexts[f.ID] = fmt.Sprintf("%s%d", header, dataIndex)
				}
			}
		}
	}

	return contexts
}

// nearestHeader picks the column header whose x position is closest to x.
func nearestHeader(headers []columnHeader, x float64) string {
	best := ""
	bestDist := math.Inf(1)
	for _, h := range headers {
		if dist := math.Abs(h.x - x); dist < bestDist {
			bestDist = dist
			best = h.text
		}
	}
	return best
}

// Process runs layout inference and context synthesis over every extracted
// table and returns a new mapping in which each empty field's text has been
// replaced by its synthesized context. Input tables are not modified.
func (e *Engine) Process(extracted map[string]*Table) map[string]*Table {
	processed := make(map[string]*Table, len(extracted))
	for id, t := range extracted {
		layout := e.InferLayout(t.Fields)
		contexts := e.SynthesizeContext(t, layout)

		out := *t
		out.Fields = make([]Field, len(t.Fields))
		copy(out.Fields, t.Fields)
		for i := range out.Fields {
			f := &out.Fields[i]
			if f.Type != model.ClassField || strings.TrimSpace(f.Text) != "" {
				continue
			}
			if context, ok := contexts[f.ID]; ok {
				f.Text = context
			}
		}
		processed[id] = &out
	}
	return processed
}
