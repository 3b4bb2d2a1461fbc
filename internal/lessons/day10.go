package lessons

import (
	"context"
	"maps"
	"slices"
)

func init() {
	Register(&lesson{
		id:    "day-10",
		title: "Dictionaries",
		brief: `# Day 10: Dictionaries

Maps from gene names to expression levels and from field names to patient
metadata: creating, reading with and without a default, adding, updating,
deleting, popping, key/value views, membership and iteration.

**Mini-project:** collect the hypermethylated sites (level above 0.75) from
a list of site readings and summarise them.`,
		run: runDay10,
	})
}

type siteReading struct {
	Site  string
	Level float64
}

// getOr returns m[key], or fallback when the key is absent.
func getOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// pop deletes key from m and returns its value, or fallback when absent.
func pop[K comparable, V any](m map[K]V, key K, fallback V) V {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	delete(m, key)
	return v
}

func newExpression() map[string]float64 {
	return map[string]float64{"TP53": 150.5, "BRCA1": 85.2, "MYC": 210.0, "KRAS": 55.08}
}

func newSampleInfo() map[string]any {
	return map[string]any{
		"sample_id":  "patient1",
		"age":        30,
		"gender":     "female",
		"disease":    "breast_cancer",
		"is_treated": true,
	}
}

func runDay10(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Creating Maps")
	empty := map[string]float64{}
	out.Linef("Empty map: %s, type %T", dict(empty), empty)
	expr := newExpression()
	out.Linef("Gene expression: %s", dict(expr))
	info := newSampleInfo()
	out.Linef("Patient info: %s", dict(info))
	info["treatment_first"] = []string{"chemo", "radiation"}
	out.Linef("With mixed values: %s", dict(info))

	out.Section("Accessing Values")
	out.Linef("Expression of TP53: %s", num(expr["TP53"]))
	if v, ok := expr["BRCA2"]; ok {
		out.Linef("Expression of BRCA2: %s", num(v))
	} else {
		out.Line("Expression of BRCA2: not present")
	}
	out.Linef("Expression of BRCA3 (default): %s", num(getOr(expr, "BRCA3", 0.56)))
	out.Linef("Expression of TP53 (existing): %s", num(getOr(expr, "TP53", 0.035)))
	info = newSampleInfo()
	out.Linef("Patient ID is: %v", info["sample_id"])
	out.Linef("Patient age is: %v", info["age"])

	out.Section("Adding and Modifying")
	expr["BRCA4"] = 10.67
	out.Linef("Added BRCA4: %s", dict(expr))
	expr["MYC"] = 99.56
	out.Linef("Modified MYC: %s", dict(expr))
	maps.Copy(expr, map[string]float64{"PTEN": 785.6, "EGFR": 45.2})
	out.Linef("After update: %s", dict(expr))
	maps.Copy(expr, map[string]float64{"MYC": 215.5, "KRAS": 60.0})
	out.Linef("After second update: %s", dict(expr))

	out.Section("Removing Items")
	out.Linef("Original: %s", dict(info))
	delete(info, "age")
	out.Linef("After deleting \"age\": %s", dict(info))
	if _, ok := info["city"]; !ok {
		out.Error("Cannot delete \"city\": key not present")
	}
	out.Linef("Popped gender: %v", pop(info, "gender", any(nil)))
	out.Linef("Popped tissue (default): %v", pop(info, "tissue", any("skin")))
	out.Linef("Popped disease: %v", pop(info, "disease", any("cancer")))
	out.Linef("After pops: %s", dict(info))

	counts := map[string]int{"A": 5, "B": 10, "C": 3}
	last := slices.Max(slices.Collect(maps.Keys(counts)))
	out.Linef("Popped item: (%s, %d)", last, pop(counts, last, 0))
	out.Linef("Counts after pop: %s", dict(counts))
	cp := map[string]float64{"TP53": 150.5, "BRCA1": 85.2}
	clear(cp)
	out.Linef("After clear: %s", dict(cp))

	out.Section("Keys, Values and Items")
	info = newSampleInfo()
	keys := slices.Sorted(maps.Keys(info))
	out.Linef("Keys: %s", list(keys))
	vals := make([]any, len(keys))
	items := make([]string, len(keys))
	for i, k := range keys {
		vals[i] = info[k]
		items[i] = "(" + repr(k) + ", " + repr(info[k]) + ")"
	}
	out.Linef("Values: %s", list(vals))
	out.Linef("Items: %s", list(items))

	geneCounts := map[string]int{"GeneA": 5, "GeneB": 10}
	out.Linef("Keys before addition: %s", list(slices.Sorted(maps.Keys(geneCounts))))
	geneCounts["GeneC"] = 35
	out.Linef("Keys after addition: %s", list(slices.Sorted(maps.Keys(geneCounts))))

	out.Section("Membership")
	expr = newExpression()
	_, has := expr["TP53"]
	out.Linef("Is 'TP53' present? %t", has)
	_, has = expr["EGFR"]
	out.Linef("Is 'EGFR' present? %t", has)
	out.Linef("Is 'EGFR' absent? %t", !has)
	for _, gene := range []string{"TP53", "MYC33"} {
		if level, ok := expr[gene]; ok {
			out.Linef("Gene %s found with level %s", gene, num(level))
		} else {
			out.Linef("Gene %s not found", gene)
		}
	}

	out.Section("Iterating")
	genes := slices.Sorted(maps.Keys(expr))
	for _, g := range genes {
		out.Linef("Gene: %s, Level: %s", g, num(expr[g]))
	}
	out.Line("Genes above threshold 100:")
	for _, g := range genes {
		if expr[g] > 100 {
			out.Linef("Gene: %s, Level: %s", g, num(expr[g]))
		}
	}

	out.Section("Mini-Project: Hypermethylated Sites")
	readings := []siteReading{
		{"site_A_chr1:100", 0.1},
		{"site_B_chr1:250", 0.8},
		{"site_C_chr2:500", 0.3},
		{"site_D_chr1:300", 0.9},
		{"site_E_chr3:120", 0.2},
		{"site_F_chr2:600", 0.85},
		{"site_G_chr1:150", 0.4},
	}
	const hyperThreshold = 0.75
	hyper := make(map[string]float64)
	for _, r := range readings {
		if r.Level > hyperThreshold {
			hyper[r.Site] = r.Level
			out.Linef("Hyper-methylated site - %s, Level: %s", r.Site, num(r.Level))
		}
	}
	out.Linef("Hypermethylated sites: %s", dict(hyper))
	out.Linef("Total methylation sites: %d", len(readings))
	out.Linef("Total hyper-methylation sites: %d", len(hyper))
	return nil
}
