package dashboard

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"riskdash/internal/catalog"
)

// Cell is one label/value pair of a rendered record.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OverlayRow is one rendered record. It carries exactly the fields of its
// source record, in order.
type OverlayRow struct {
	Cells []Cell
}

// Overlay is the rendered form of a DetailSet.
type Overlay struct {
	Key   string
	Title string
	Rows  []OverlayRow
}

// RenderDetail lays out a detail set without assuming a schema. It is pure
// and never fails: empty sets give an empty body, odd values are coerced.
func RenderDetail(set catalog.DetailSet) Overlay {
	o := Overlay{Key: set.Key, Title: set.Title, Rows: make([]OverlayRow, 0, len(set.Records))}
	for _, rec := range set.Records {
		row := OverlayRow{Cells: make([]Cell, 0, len(rec.Fields))}
		for _, f := range rec.Fields {
			row.Cells = append(row.Cells, Cell{Label: DisplayLabel(f.Name), Value: FormatValue(f.Value)})
		}
		o.Rows = append(o.Rows, row)
	}
	return o
}

// Lines renders the overlay body as fixed-width text: one "LABEL  value" line
// per cell with a blank line between records. Labels are padded to the
// widest label of their own record.
func (o Overlay) Lines(width int) []string {
	if width < 8 {
		width = 8
	}
	var out []string
	for i, row := range o.Rows {
		if i > 0 {
			out = append(out, "")
		}
		lw := 0
		for _, c := range row.Cells {
			if w := runewidth.StringWidth(c.Label); w > lw {
				lw = w
			}
		}
		if lw > width/2 {
			lw = width / 2
		}
		for _, c := range row.Cells {
			label := runewidth.FillRight(runewidth.Truncate(c.Label, lw, "…"), lw)
			line := label + "  " + c.Value
			out = append(out, runewidth.Truncate(line, width, "…"))
		}
	}
	return out
}

// DisplayLabel normalizes a field name for display: camelCase and snake_case
// words are split and uppercased ("avgScore" → "AVG SCORE").
func DisplayLabel(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
			continue
		case i > 0 && unicode.IsUpper(r):
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				if !strings.HasSuffix(b.String(), " ") {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return strings.TrimSpace(b.String())
}

// FormatValue coerces a record value to display text. Non-scalar values get a
// best-effort rendering rather than an error.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
