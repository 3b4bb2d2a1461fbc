package lessons

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
)

func init() {
	Register(&lesson{
		id:    "day-12",
		title: "Sets",
		brief: `# Day 12: Sets

Unique collections built on maps: creating from slices, adding, removing
safely and unsafely, membership, then union, intersection, difference,
symmetric difference and subset/superset checks.

**Mini-project:** compare the hypermethylated genes of two samples.`,
		run: runDay12,
	})
}

// set is an unordered collection of unique values.
type set[T cmp.Ordered] map[T]struct{}

func setOf[T cmp.Ordered](xs ...T) set[T] {
	s := make(set[T], len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

func (s set[T]) add(xs ...T) {
	for _, x := range xs {
		s[x] = struct{}{}
	}
}

func (s set[T]) has(x T) bool {
	_, ok := s[x]
	return ok
}

// remove deletes x and reports whether it was present.
func (s set[T]) remove(x T) bool {
	ok := s.has(x)
	delete(s, x)
	return ok
}

func (s set[T]) union(o set[T]) set[T] {
	out := maps.Clone(s)
	if out == nil {
		out = set[T]{}
	}
	maps.Copy(out, o)
	return out
}

func (s set[T]) intersect(o set[T]) set[T] {
	out := set[T]{}
	for x := range s {
		if o.has(x) {
			out[x] = struct{}{}
		}
	}
	return out
}

func (s set[T]) minus(o set[T]) set[T] {
	out := set[T]{}
	for x := range s {
		if !o.has(x) {
			out[x] = struct{}{}
		}
	}
	return out
}

func (s set[T]) symDiff(o set[T]) set[T] {
	return s.minus(o).union(o.minus(s))
}

func (s set[T]) subsetOf(o set[T]) bool {
	for x := range s {
		if !o.has(x) {
			return false
		}
	}
	return true
}

func (s set[T]) properSubsetOf(o set[T]) bool {
	return len(s) < len(o) && s.subsetOf(o)
}

func (s set[T]) equal(o set[T]) bool {
	return len(s) == len(o) && s.subsetOf(o)
}

func (s set[T]) sorted() []T {
	return slices.Sorted(maps.Keys(s))
}

// String lists the members in sorted order so output is stable.
func (s set[T]) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.sorted() {
		parts = append(parts, repr(x))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func runDay12(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Creating Sets")
	nums := setOf(1, 2, 3, 4, 5, 5, 7, 8, 9, 10)
	out.Linef("My set is %s with %d members", nums, len(nums))
	genes := []string{"GeneA", "GeneB", "GeneC", "GeneA"}
	out.Linef("From the list %s: %s", list(genes), setOf(genes...))
	out.Linef("Empty set: %s", setOf[string]())

	out.Section("Modifying Sets")
	samples := setOf("Sample1", "Sample2", "Sample3")
	out.Linef("Original: %s", samples)
	samples.add("Sample4")
	out.Linef("After add: %s", samples)
	samples.add("Sample2")
	out.Linef("After adding a duplicate: %s", samples)
	samples.add("Sample5", "Sample6")
	out.Linef("After adding several: %s", samples)
	samples.remove("Sample2")
	out.Linef("After remove: %s", samples)
	if !samples.remove("Sample9") {
		out.Error("Cannot remove \"Sample9\": not in set")
	}
	delete(samples, "Sample9")
	out.Linef("After discarding a missing item: %s", samples)
	first := samples.sorted()[0]
	samples.remove(first)
	out.Linef("Popped %s, left %s", first, samples)
	cp := setOf("S1", "S2", "S3")
	clear(cp)
	out.Linef("After clear: %s", cp)

	out.Section("Membership")
	samples = setOf("Sample1", "Sample2", "Sample3")
	out.Linef("Sample1 in samples: %t", samples.has("Sample1"))
	out.Linef("Sample5 in samples: %t", samples.has("Sample5"))

	out.Section("Set Operations")
	a := setOf("GeneA", "GeneB", "GeneC", "GeneD", "GeneE")
	b := setOf("GeneC", "GeneD", "GeneF", "GeneG", "GeneH")
	all := setOf("GeneA", "GeneC", "GeneI", "GeneJ")
	out.Linef("Union A | B: %s", a.union(b))
	out.Linef("Union of all three: %s", a.union(b).union(all))
	out.Linef("Intersection A & B: %s", a.intersect(b))
	out.Linef("Intersection of all three: %s", a.intersect(b).intersect(all))
	out.Linef("Difference A - B: %s", a.minus(b))
	out.Linef("Symmetric difference A ^ B: %s", a.symDiff(b))

	out.Heading("Subsets and supersets")
	small, large := setOf(1, 2), setOf(1, 2, 3, 4, 5)
	out.Linef("small <= large: %t", small.subsetOf(large))
	out.Linef("large <= small: %t", large.subsetOf(small))
	out.Linef("large < small: %t", large.properSubsetOf(small))
	out.Linef("small < large: %t", small.properSubsetOf(large))
	out.Linef("small >= large: %t", large.subsetOf(small))
	out.Linef("large >= small: %t", small.subsetOf(large))
	out.Linef("large > small: %t", small.properSubsetOf(large))
	out.Linef("small > large: %t", large.properSubsetOf(small))

	out.Section("Mini-Project: Hypermethylated Genes")
	sampleA := setOf("GeneA", "GeneB", "GeneC", "GeneD")
	sampleB := setOf("GeneD", "GeneE", "GeneF")
	onlyA, onlyB := sampleA.minus(sampleB), sampleB.minus(sampleA)
	sym := sampleA.symDiff(sampleB)
	out.Linef("All unique hypermethylated genes: %s", sampleA.union(sampleB))
	out.Linef("Hypermethylated in both samples: %s", sampleA.intersect(sampleB))
	out.Linef("Only in Sample A: %s", onlyA)
	out.Linef("Only in Sample B: %s", onlyB)
	out.Linef("In A or B but not both: %s", sym)
	out.Linef("Verification: %t", sym.equal(onlyA.union(onlyB)))
	return nil
}
