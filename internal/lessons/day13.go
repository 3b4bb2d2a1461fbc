package lessons

import (
	"context"
	"strings"
)

func init() {
	Register(&lesson{
		id:    "day-13",
		title: "Transforming Collections",
		brief: `# Day 13: Transforming Collections

Each task is written twice: once as an explicit loop and once with the
small generic helpers ` + "`mapSlice`" + `, ` + "`filter`" + ` and
` + "`flatMap`" + `. Squares, uppercasing, suffixes, filtering by value
and prefix, conditional labels, coordinate pairs and flattening.`,
		run: runDay13,
	})
}

func mapSlice[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

func filter[T any](xs []T, keep func(T) bool) []T {
	var out []T
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func flatMap[T, U any](xs []T, f func(T) []U) []U {
	var out []U
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// upTo returns 0..n-1.
func upTo(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

type coord struct{ X, Y int }

func (c coord) String() string { return "(" + repr(c.X) + ", " + repr(c.Y) + ")" }

func runDay13(ctx context.Context, s *Session) error {
	out := s.Out
	square := func(x int) int { return x * x }
	isEven := func(x int) bool { return x%2 == 0 }

	out.Section("Simple Transformation")
	var squares []int
	for x := range 10 {
		squares = append(squares, x*x)
	}
	out.Linef("Squares (loop):   %s", list(squares))
	out.Linef("Squares (helper): %s", list(mapSlice(upTo(10), square)))

	genes := []string{"myb77", "brca2", "wrky23", "bzip", "myc", "tp53"}
	var upper []string
	for _, g := range genes {
		upper = append(upper, strings.ToUpper(g))
	}
	out.Linef("Uppercase (loop):   %s", list(upper))
	out.Linef("Uppercase (helper): %s", list(mapSlice(genes, strings.ToUpper)))
	out.Linef("With suffix: %s", list(mapSlice(genes, func(g string) string { return g + "_processed" })))

	out.Section("Filtering")
	var evens []int
	for x := range 20 {
		if x%2 == 0 {
			evens = append(evens, x)
		}
	}
	out.Linef("Even numbers (loop):   %s", list(evens))
	out.Linef("Even numbers (helper): %s", list(filter(upTo(20), isEven)))

	values := []float64{0.1, 0.5, 0.6, 0.9, 0.22, 1}
	const threshold = 0.75
	out.Linef("Hypermethylated values: %s", list(filter(values, func(v float64) bool { return v > threshold })))
	bm := filter(genes, func(g string) bool {
		u := strings.ToUpper(g)
		return strings.HasPrefix(u, "B") || strings.HasPrefix(u, "M")
	})
	out.Linef("Genes starting with B or M: %s", list(bm))

	out.Section("Conditional Labels")
	parity := mapSlice(upTo(10), func(i int) string {
		if isEven(i) {
			return "Even"
		}
		return "Odd"
	})
	out.Linef("Parity labels: %s", list(parity))
	levels := mapSlice(values, func(v float64) string {
		if v > threshold {
			return "High"
		}
		return "Low"
	})
	out.Linef("Methylation labels: %s", list(levels))
	out.Linef("Squares of even numbers: %s", list(mapSlice(filter(upTo(20), isEven), square)))

	out.Section("Nested Transformations")
	var pairs []coord
	for i := range 10 {
		for j := range 5 {
			pairs = append(pairs, coord{i, j})
		}
	}
	out.Linef("Coordinates (loop, %d pairs): %s", len(pairs), list(pairs))
	helperPairs := flatMap(upTo(10), func(i int) []coord {
		return mapSlice(upTo(5), func(j int) coord { return coord{i, j} })
	})
	out.Linef("Coordinates match: %t", list(helperPairs) == list(pairs))

	nested := [][]int{{1, 2}, {3, 4, 5}, {6, 7, 8, 9, 10}}
	var flat []int
	for _, row := range nested {
		flat = append(flat, row...)
	}
	out.Linef("Flattened (loop):   %s", list(flat))
	out.Linef("Flattened (helper): %s", list(flatMap(nested, func(row []int) []int { return row })))
	out.Linef("Even flattened: %s", list(flatMap(nested, func(row []int) []int { return filter(row, isEven) })))
	return nil
}
