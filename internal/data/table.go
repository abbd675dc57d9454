// Package data loads delimited tables and aggregates columns into the bins,
// categories and tiles that become ordinal axis domains.
package data

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gwenn/yacr"
)

// SamplePrefix marks a built-in dataset in a data source string.
const SamplePrefix = "sample:"

// Table is a header row plus string cells. Short rows are padded with "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load reads a CSV file (TSV when the extension is .tsv or .tab) or a
// built-in sample.
func Load(src string) (*Table, error) {
	if name, ok := strings.CutPrefix(src, SamplePrefix); ok {
		return Sample(name)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()
	t, err := Read(f, Separator(src))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(src), err)
	}
	return t, nil
}

// Separator picks the field separator from a file name.
func Separator(path string) byte {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	}
	return ','
}

// Read parses delimited text whose first record is the header.
func Read(r io.Reader, sep byte) (*Table, error) {
	rd := yacr.NewReader(r, sep, true, false)
	rd.Trim = true
	t := &Table{}
	var rec []string
	for rd.Scan() {
		rec = append(rec, rd.Text())
		if !rd.EndOfRecord() {
			continue
		}
		if len(rec) == 1 && rec[0] == "" {
			rec = rec[:0]
			continue
		}
		if t.Columns == nil {
			t.Columns = rec
		} else {
			t.Rows = append(t.Rows, rec)
		}
		rec = nil
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", rd.LineNumber(), err)
	}
	if len(rec) > 0 && !(len(rec) == 1 && rec[0] == "") {
		if t.Columns == nil {
			t.Columns = rec
		} else {
			t.Rows = append(t.Rows, rec)
		}
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	for i, row := range t.Rows {
		if len(row) > len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+2, len(row), len(t.Columns))
		}
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows[i] = row
	}
	return t, nil
}

// Write emits t with yacr, quoting fields that need it.
func Write(w io.Writer, t *Table, sep byte) error {
	wr := yacr.NewWriter(w, sep, true)
	for _, rec := range append([][]string{t.Columns}, t.Rows...) {
		for _, v := range rec {
			wr.WriteString(v)
		}
		wr.EndOfRecord()
	}
	wr.Flush()
	return wr.Err()
}

// Index returns the position of col, or -1.
func (t *Table) Index(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Strings returns the cells of col.
func (t *Table) Strings(col string) ([]string, error) {
	i := t.Index(col)
	if i < 0 {
		return nil, fmt.Errorf("no column %q", col)
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Float parses col as numbers. Empty cells are skipped.
func (t *Table) Float(col string) ([]float64, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(cells))
	for r, c := range cells {
		if c == "" {
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("column %q row %d: %q is not a number", col, r+2, c)
		}
		out = append(out, v)
	}
	return out, nil
}

// Aligned parses col row by row, with NaN for empty cells.
func (t *Table) Aligned(col string) ([]float64, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for r, c := range cells {
		if c == "" {
			out[r] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %q is not a number", col, r+2, c)
		}
		out[r] = v
	}
	return out, nil
}

// Pairs parses two numeric columns, keeping rows where both are set.
func (t *Table) Pairs(xcol, ycol string) (xs, ys []float64, err error) {
	xi, yi := t.Index(xcol), t.Index(ycol)
	if xi < 0 || yi < 0 {
		return nil, nil, fmt.Errorf("no column %q or %q", xcol, ycol)
	}
	for r, row := range t.Rows {
		if row[xi] == "" || row[yi] == "" {
			continue
		}
		x, errx := strconv.ParseFloat(row[xi], 64)
		y, erry := strconv.ParseFloat(row[yi], 64)
		if errx != nil || erry != nil {
			return nil, nil, fmt.Errorf("row %d: %q, %q are not numbers", r+2, row[xi], row[yi])
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// Numeric reports whether every non-empty cell of col is a number.
func (t *Table) Numeric(col string) bool {
	cells, err := t.Strings(col)
	if err != nil {
		return false
	}
	seen := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if ok, _ := yacr.IsNumber([]byte(c)); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// Summary describes one column for `zoombar inspect`.
type Summary struct {
	Name     string
	Numeric  bool
	Min, Max float64
	Distinct int
	Empty    int
}

// Summarize describes every column.
func (t *Table) Summarize() []Summary {
	out := make([]Summary, 0, len(t.Columns))
	for _, col := range t.Columns {
		s := Summary{Name: col, Numeric: t.Numeric(col)}
		cells, _ := t.Strings(col)
		distinct := map[string]bool{}
		for _, c := range cells {
			if c == "" {
				s.Empty++
				continue
			}
			distinct[c] = true
		}
		s.Distinct = len(distinct)
		if s.Numeric {
			vs, _ := t.Float(col)
			s.Min, s.Max = Extent(vs)
		}
		out = append(out, s)
	}
	return out
}

// Extent returns the smallest and largest value, or 0, 0 for no values.
func Extent(vs []float64) (min, max float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}

// FormatValue renders a number compactly for tick and bin labels.
func FormatValue(v float64) string {
	if math.Abs(v) >= 1e4 {
		return strings.ReplaceAll(humanize.SIWithDigits(v, 1, ""), " ", "")
	}
	return humanize.Ftoa(math.Round(v*1e4) / 1e4)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount(n int) string { return humanize.Comma(int64(n)) }
