package data

import (
	"math"
	"sort"
	"strconv"

	mscale "github.com/aclements/go-moremath/scale"
)

// OtherLabel collects the categories beyond the configured maximum.
const OtherLabel = "Other"

// Bin is a half-open interval [Lo, Hi) with its count. The last bin of a
// histogram also holds values equal to its Hi.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Label is the bin's ordinal domain label.
func (b Bin) Label() string { return FormatValue(b.Lo) + "-" + FormatValue(b.Hi) }

// Thresholds returns nice bin edges covering values with at most bins bins.
func Thresholds(values []float64, bins int) []float64 {
	min, max := Extent(values)
	l := mscale.Linear{Min: min, Max: max}
	o := mscale.TickOptions{Max: bins + 1}
	l.Nice(o)
	edges, _ := l.Ticks(o)
	if len(edges) < 2 {
		return []float64{l.Min, l.Max}
	}
	return edges
}

// Histogram counts values into nice bins.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins < 1 {
		return nil
	}
	edges := Thresholds(values, bins)
	out := make([]Bin, len(edges)-1)
	for i := range out {
		out[i] = Bin{Lo: edges[i], Hi: edges[i+1]}
	}
	for _, v := range values {
		out[binIndex(edges, v)].Count++
	}
	return out
}

// binIndex finds the bin holding v; values outside the edges go to the
// nearest end bin.
func binIndex(edges []float64, v float64) int {
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		i++
	}
	i--
	if i < 0 {
		i = 0
	}
	if i > len(edges)-2 {
		i = len(edges) - 2
	}
	return i
}

// BinLabels returns the ordinal domain for bins. Compact labels that
// collide fall back to full precision.
func BinLabels(bins []Bin) []string {
	out := make([]string, len(bins))
	seen := map[string]bool{}
	for i, b := range bins {
		out[i] = b.Label()
		if seen[out[i]] {
			for j, b := range bins {
				out[j] = strconv.FormatFloat(b.Lo, 'g', -1, 64) + "-" + strconv.FormatFloat(b.Hi, 'g', -1, 64)
			}
			return out
		}
		seen[out[i]] = true
	}
	return out
}

// Category is one distinct value with its row count and the sum of an
// optional weight column.
type Category struct {
	Label string
	Count int
	Sum   float64
}

// Categories groups values by label, most frequent first (ties by label),
// folding everything past max-1 into OtherLabel when there are more than
// max. weights may be nil.
func Categories(values []string, weights []float64, max int) []Category {
	idx := map[string]int{}
	var cats []Category
	for i, v := range values {
		if v == "" {
			continue
		}
		j, ok := idx[v]
		if !ok {
			j = len(cats)
			idx[v] = j
			cats = append(cats, Category{Label: v})
		}
		cats[j].Count++
		if weights != nil && i < len(weights) && !math.IsNaN(weights[i]) {
			cats[j].Sum += weights[i]
		}
	}
	sort.SliceStable(cats, func(a, b int) bool {
		if cats[a].Count != cats[b].Count {
			return cats[a].Count > cats[b].Count
		}
		return cats[a].Label < cats[b].Label
	})
	if max < 1 || len(cats) <= max {
		return cats
	}
	other := Category{Label: OtherLabel}
	for _, c := range cats[max-1:] {
		other.Count += c.Count
		other.Sum += c.Sum
	}
	kept := append([]Category(nil), cats[:max-1]...)
	for i := range kept {
		// A real category named like the bucket would break label uniqueness.
		if kept[i].Label == OtherLabel {
			kept[i].Label = OtherLabel + " (data)"
		}
	}
	return append(kept, other)
}

// CategoryLabels returns the ordinal domain for cats.
func CategoryLabels(cats []Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Label
	}
	return out
}

// Lookup maps a raw value to its category label, OtherLabel when folded.
func Lookup(cats []Category) func(string) string {
	m := make(map[string]string, len(cats))
	for _, c := range cats {
		m[c.Label] = c.Label
	}
	return func(v string) string {
		if v == OtherLabel {
			if _, ok := m[OtherLabel+" (data)"]; ok {
				return OtherLabel + " (data)"
			}
			return OtherLabel
		}
		if l, ok := m[v]; ok {
			return l
		}
		return OtherLabel
	}
}

// Tiles holds heat map counts: Counts[x bin][y category].
type Tiles struct {
	Bins   []Bin
	Cats   []Category
	Counts [][]int
	Max    int
}

// MakeTiles bins xs and groups ys, then counts rows per (bin, category).
func MakeTiles(xs []float64, ys []string, bins, maxCats int) Tiles {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	t := Tiles{
		Bins: Histogram(xs[:n], bins),
		Cats: Categories(ys[:n], nil, maxCats),
	}
	if len(t.Bins) == 0 {
		return t
	}
	edges := make([]float64, 0, len(t.Bins)+1)
	for _, b := range t.Bins {
		edges = append(edges, b.Lo)
	}
	edges = append(edges, t.Bins[len(t.Bins)-1].Hi)
	cat := map[string]int{}
	for j, c := range t.Cats {
		cat[c.Label] = j
	}
	look := Lookup(t.Cats)
	t.Counts = make([][]int, len(t.Bins))
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(t.Cats))
	}
	for r := 0; r < n; r++ {
		j, ok := cat[look(ys[r])]
		if !ok {
			continue
		}
		i := binIndex(edges, xs[r])
		t.Counts[i][j]++
		if t.Counts[i][j] > t.Max {
			t.Max = t.Counts[i][j]
		}
	}
	return t
}
