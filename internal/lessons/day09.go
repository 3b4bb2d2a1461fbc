package lessons

import (
	"context"
	"slices"

	"practicejournal/internal/challenges"
)

func init() {
	Register(&lesson{
		id:    "day-09",
		title: "Lists",
		brief: `# Day 9: Lists

Creating slices, indexing from either end (and what happens past the end),
slicing with steps, mutation, append/insert/remove/pop, sorting, membership
and iteration over methylation values.

**Challenge:** pull the ` + "`ERROR`" + ` messages out of a log and write them
to ` + "`errors.txt`" + `.`,
		run: runDay09,
	})
}

func runDay09(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Creating Lists")
	numbers := []int{10, 20, 30, 40, 50}
	out.Linef("My number list: %s", list(numbers))
	out.Linef("Type: %T", numbers)
	fruits := []string{"apple", "banana", "cherry"}
	out.Linef("My string list: %s", list(fruits))
	mixed := []any{10, "apple", 20, "banana", 30, "cherry", 40}
	out.Linef("My mixed list: %s", list(mixed))
	var empty []string
	out.Linef("My empty list: %s (len %d)", list(empty), len(empty))

	out.Section("Indexing")
	for _, i := range []int{0, 2, -1, -2, 3, -5} {
		if v, ok := at(fruits, i); ok {
			out.Linef("Item at index %d is %s", i, v)
		} else {
			out.Error("Index %d is out of range for a list of %d items", i, len(fruits))
		}
	}

	out.Section("Slicing")
	items := []string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}
	out.Line("[1:4]  ", list(sliceOf(items, 1, 4, 1)))
	out.Line("[:3]   ", list(sliceOf(items, none, 3, 1)))
	out.Line("[2:]   ", list(sliceOf(items, 2, none, 1)))
	out.Line("[:]    ", list(sliceOf(items, none, none, 1)))
	out.Line("[::2]  ", list(sliceOf(items, none, none, 2)))
	out.Line("[1:6:2]", list(sliceOf(items, 1, 6, 2)))
	out.Line("[::-1] ", list(sliceOf(items, none, none, -1)))

	out.Section("Mutability")
	genes := []string{"TP53", "BRCA1", "PTEN", "KRAS"}
	out.Linef("The gene list is: %s", list(genes))
	genes[1] = "MYC12"
	out.Linef("The new list is %s", list(genes))
	genes = slices.Replace(genes, 1, 3, "ABC", "DEF", "GHI", "JKL")
	out.Linef("After replacing [1:3]: %s", list(genes))

	out.Section("Adding Elements")
	sample := []float64{1, 2, 3, 4, 5}
	out.Linef("Original list: %s", list(sample))
	sample = append(sample, 6)
	out.Linef("After append: %s", list(sample))
	sample = slices.Insert(sample, 2, 2.5)
	out.Linef("After insert at 2: %s", list(sample))
	sample = slices.Insert(sample, len(sample), 7)
	out.Linef("After insert at the end: %s", list(sample))

	out.Section("Removing Elements")
	steps := []string{"Start", "Process", "Analyze", "Visualize", "Clean Up"}
	out.Linef("Original list: %s", list(steps))
	removed := steps[2]
	steps = slices.Delete(steps, 2, 3)
	out.Linef("Popped index 2: %s, list is now %s", removed, list(steps))
	removed = steps[len(steps)-1]
	steps = steps[:len(steps)-1]
	out.Linef("Popped last: %s, list is now %s", removed, list(steps))
	for _, target := range []string{"Start", "Missing Step"} {
		if i := slices.Index(steps, target); i >= 0 {
			steps = slices.Delete(steps, i, i+1)
			out.Linef("Removed %q, list is now %s", target, list(steps))
		} else {
			out.Error("Cannot remove %q: not in list", target)
		}
	}

	out.Section("Useful Functions")
	data := []int{5, 2, 8, 1, 9, 4}
	out.Linef("Original list: %s, length %d", list(data), len(data))
	slices.Sort(data)
	out.Linef("Sorted: %s", list(data))
	slices.Reverse(data)
	out.Linef("Reverse sorted: %s", list(data))
	status := []string{"Mutated", "Normal", "Amplified"}
	out.Linef("Is 'Mutated' in the list? %t", slices.Contains(status, "Mutated"))
	out.Linef("Is 'Deleted' in the list? %t", slices.Contains(status, "Deleted"))

	out.Section("Iterating")
	values := []float64{0.5, 1, 0.22, 0.58, 0.45, 0.78}
	for _, v := range values {
		out.Linef("Methylation value: %s", num(v))
	}
	threshold := 0.6
	out.Linef("Checking if any value is above %s:", num(threshold))
	for _, v := range values {
		if v > threshold {
			out.Linef("Value %s is above the threshold", num(v))
		}
	}

	out.Section("Challenge: Log File Parser")
	errs := challenges.ExtractErrors(challenges.SampleLog)
	out.Linef("Errors found: %s", list(errs))
	for _, level := range []string{"INFO", "DEBUG"} {
		out.Linef("%s messages: %s", level, list(challenges.ExtractLevel(challenges.SampleLog, level)))
	}
	out.Linef("Non-string style input: %s", list(challenges.ExtractErrors("")))

	path := s.Path("errors.txt")
	if err := challenges.WriteErrors(path, errs); err != nil {
		return err
	}
	out.Success("Written %d errors to %s", len(errs), path)
	return nil
}
