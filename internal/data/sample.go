package data

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
)

// Samples are generated from fixed seeds, so every call returns the same rows.
var samples = map[string]func() *Table{
	"iris":  iris,
	"sales": sales,
	"index": index,
}

// SampleNames lists the built-in datasets.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sample returns a built-in dataset by name.
func Sample(name string) (*Table, error) {
	f, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("no sample %q (have %v)", name, SampleNames())
	}
	return f(), nil
}

func f1(v float64) string { return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64) }

// iris resembles Fisher's measurements: three species, fifty flowers each.
func iris() *Table {
	rng := rand.New(rand.NewSource(1936))
	type dist struct{ mean, sd float64 }
	species := []struct {
		name           string
		sl, sw, pl, pw dist
	}{
		{"setosa", dist{5.0, 0.35}, dist{3.4, 0.38}, dist{1.46, 0.17}, dist{0.25, 0.1}},
		{"versicolor", dist{5.9, 0.5}, dist{2.8, 0.31}, dist{4.26, 0.47}, dist{1.33, 0.2}},
		{"virginica", dist{6.6, 0.6}, dist{3.0, 0.32}, dist{5.55, 0.55}, dist{2.03, 0.27}},
	}
	draw := func(d dist) string { return f1(math.Max(0.1, d.mean+d.sd*rng.NormFloat64())) }
	t := &Table{Columns: []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"}}
	for _, s := range species {
		for i := 0; i < 50; i++ {
			t.Rows = append(t.Rows, []string{draw(s.sl), draw(s.sw), draw(s.pl), draw(s.pw), s.name})
		}
	}
	return t
}

// sales has more regions than a bar chart shows, so the tail folds into Other.
func sales() *Table {
	rng := rand.New(rand.NewSource(2024))
	regions := []string{
		"North", "South", "East", "West", "Central", "Coastal", "Mountain",
		"Prairie", "Delta", "Islands", "Highlands", "Valley",
	}
	products := []string{"widgets", "gadgets", "gizmos"}
	t := &Table{Columns: []string{"region", "product", "amount"}}
	for i, r := range regions {
		n := 40 - 3*i
		for j := 0; j < n; j++ {
			amt := 50 + 400*rng.Float64()*float64(len(regions)-i)/float64(len(regions))
			t.Rows = append(t.Rows, []string{r, products[rng.Intn(len(products))], strconv.FormatFloat(math.Round(amt*100)/100, 'f', 2, 64)})
		}
	}
	return t
}

// index is a random walk of daily closing prices.
func index() *Table {
	rng := rand.New(rand.NewSource(1987))
	t := &Table{Columns: []string{"day", "close", "volume"}}
	price := 100.0
	for d := 1; d <= 250; d++ {
		price *= 1 + 0.015*rng.NormFloat64()
		vol := 1e6 * (1 + rng.Float64())
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(d),
			strconv.FormatFloat(math.Round(price*100)/100, 'f', 2, 64),
			strconv.FormatFloat(math.Round(vol), 'f', 0, 64),
		})
	}
	return t
}
