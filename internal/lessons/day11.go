package lessons

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

func init() {
	Register(&lesson{
		id:    "day-11",
		title: "Tuples",
		brief: `# Day 11: Tuples

Fixed-size, read-only groupings: arrays and small structs. Indexing and
slicing, building a new value instead of mutating, unpacking into named
variables, counting and finding items.`,
		run: runDay11,
	})
}

// region is a fixed record of a genomic interval.
type region struct {
	Chrom      string
	Start, End int
}

var errNotFound = errors.New("item not found")

// indexOf returns the first position of v in xs.
func indexOf[T comparable](xs []T, v T) (int, error) {
	if i := slices.Index(xs, v); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("index of %v: %w", v, errNotFound)
}

// count returns how many times v occurs in xs.
func count[T comparable](xs []T, v T) int {
	n := 0
	for _, x := range xs {
		if x == v {
			n++
		}
	}
	return n
}

func runDay11(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Creating Fixed Groups")
	five := [5]int{1, 2, 3, 4, 5}
	out.Linef("%T %s", five, list(five[:]))
	one := [1]int{1}
	out.Linef("%T %s", one, list(one[:]))
	var empty [0]int
	out.Linef("%T %s", empty, list(empty[:]))
	r := region{Chrom: "Chromosome1", Start: 150000, End: 150500}
	out.Linef("%T %+v", r, r)

	out.Section("Indexing")
	data := [...]any{"Chromosome1", 150000, 150500, "Chromosome2", "Chromosome3"}
	for _, i := range []int{0, 3, -1, -2, -10, 10} {
		if v, ok := at(data[:], i); ok {
			out.Linef("[%d] = %s", i, repr(v))
		} else {
			out.Error("[%d]: index out of range", i)
		}
	}

	out.Section("Slicing")
	out.Line("[1:3] ", list(sliceOf(data[:], 1, 3, 1)))
	out.Line("[:4]  ", list(sliceOf(data[:], none, 4, 1)))
	out.Line("[2:]  ", list(sliceOf(data[:], 2, none, 1)))
	out.Line("[:]   ", list(sliceOf(data[:], none, none, 1)))
	out.Line("[::-1]", list(sliceOf(data[:], none, none, -1)))

	out.Section("Immutability")
	fixed := [3]string{"data1", "data2", "data3"}
	out.Linef("My group is %s with type %T", list(fixed[:]), fixed)
	part1, part2 := [2]int{1, 2}, [2]int{3, 4}
	combined := [4]int(slices.Concat(part1[:], part2[:]))
	out.Linef("Combined: %s", list(combined[:]))
	out.Linef("Originals unchanged: %s %s", list(part1[:]), list(part2[:]))
	copied := fixed
	copied[0] = "changed"
	out.Linef("Arrays copy on assignment: %s vs %s", list(fixed[:]), list(copied[:]))

	out.Section("Unpacking")
	pair := [2]int{1, 2}
	y, z := pair[0], pair[1]
	out.Linef("Pair: %s, y = %d, z = %d", list(pair[:]), y, z)
	chrom, start, end := r.Chrom, r.Start, r.End
	out.Linef("chrom = %s, start = %d, end = %d, length = %d", chrom, start, end, end-start)

	out.Section("Count and Index")
	ids := []string{"Patient1", "Patient2", "Patient3", "Patient1", "Patient4"}
	out.Linef("Number of samples: %d", len(ids))
	out.Linef("Is 'Patient5' present? %t", slices.Contains(ids, "Patient5"))
	out.Linef("Is 'Patient1' present? %t", slices.Contains(ids, "Patient1"))
	out.Linef("Patient1 appears %d times", count(ids, "Patient1"))
	for _, id := range []string{"Patient1", "Patient6"} {
		i, err := indexOf(ids, id)
		if err != nil {
			out.Error("Error finding item: %v", err)
			continue
		}
		out.Linef("%s first appears at index: %d", id, i)
	}
	return nil
}
