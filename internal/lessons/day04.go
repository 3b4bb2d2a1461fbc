package lessons

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"practicejournal/internal/challenges"
	"practicejournal/internal/ui"
)

// Approximate average nucleotide weights in daltons.
var nucleotideWeights = map[rune]float64{
	'A': 313.2,
	'T': 304.2,
	'C': 289.2,
	'G': 329.2,
}

func init() {
	Register(&lesson{
		id:    "day-04",
		title: "Week One Recap",
		brief: `# Day 4: Week One Recap

Variables and types again, rectangle geometry, averaging three scores read
from input, then small sequence analysis: nucleotide counts, GC content,
amino acid composition and an approximate molecular weight.

**Challenge:** clean a list of price strings, skip invalid ones and discount
anything over $10.`,
		run: runDay04,
	})
}

// gcContent returns the percentage of G and C bases in seq, 0 for an empty sequence.
func gcContent(seq string) float64 {
	n := utf8.RuneCountInString(seq)
	if n == 0 {
		return 0
	}
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(n) * 100
}

// molecularWeight sums the weights of the known bases in seq.
func molecularWeight(seq string) float64 {
	total := 0.0
	for _, r := range seq {
		total += nucleotideWeights[r]
	}
	return total
}

func runDay04(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Task 1: Personal Information")
	myName := "Akanksha Sharma"
	favorite := 15
	height := 1.6002
	learner := true
	out.Linef("My name is %s and its type is %T", myName, myName)
	out.Linef("My favorite number is %d and its type is %T", favorite, favorite)
	out.Linef("My height in meters is %s and its type is %T", num(height), height)
	out.Linef("Am I a learner: %v and its type is %T", learner, learner)

	out.Section("Task 2: Rectangle")
	length, width := 1.6, 3.65
	out.Linef("Area of a %s x %s rectangle: %.2f", num(length), num(width), length*width)
	out.Linef("Perimeter: %.2f", 2*(length+width))

	out.Section("Task 3: Average Score")
	var scores []float64
	for i := 1; i <= 3; i++ {
		v, ok, err := s.AskFloat(ctx, fmt.Sprintf("Enter your score in Test %d: ", i), 80)
		if err != nil {
			return err
		}
		if ok {
			scores = append(scores, v)
		}
	}
	if len(scores) > 0 {
		sum := 0.0
		for _, v := range scores {
			sum += v
		}
		out.Linef("The average of your %d test scores is: %.2f", len(scores), sum/float64(len(scores)))
	} else {
		out.Line("No valid scores entered.")
	}

	out.Section("Task 4: DNA Sequence Analysis")
	seq, err := s.Ask(ctx, "Enter your DNA sequence: ", "ATGCGCTAAT")
	if err != nil {
		return err
	}
	seq = strings.ToUpper(strings.TrimSpace(seq))
	out.Linef("The length of the DNA sequence is %d", utf8.RuneCountInString(seq))
	for _, base := range "ATCG" {
		out.Linef("Count of %c: %d", base, strings.Count(seq, string(base)))
	}
	out.Linef("GC content: %.2f%%", gcContent(seq))

	out.Section("Task 5: Amino Acid Composition")
	protein := "MAGSTSCPYV"
	out.Linef("Protein %s has %d residues", protein, len(protein))
	for _, aa := range "MSC" {
		out.Linef("Count of %c: %d", aa, strings.Count(protein, string(aa)))
	}

	out.Section("Task 6: Molecular Weight")
	dna := "ATGC"
	out.Linef("The total molecular weight of DNA sequence %s is %.1f", dna, molecularWeight(dna))

	out.Section("Challenge: Price Cleaner")
	prices := []string{"$10.50", "20.25", "N/A", "$5.00", "free", "15"}
	out.Line("Raw prices:", list(prices))
	for _, p := range prices {
		if _, err := challenges.ParsePrice(p); err != nil {
			out.Warn("Skipping: %v", err)
		}
	}

	report := challenges.CleanAndDiscount(prices, challenges.DefaultDiscountThreshold, challenges.DefaultDiscountRate)
	formatted := make([]string, len(report.CleanPrices))
	for i, p := range report.CleanPrices {
		formatted[i] = challenges.FormatDollars(p)
	}
	out.Line("Clean prices:", strings.Join(formatted, ", "))

	table := ui.NewSimpleTable("Summary", []string{"Metric", "Value"})
	table.AddRow("Valid items", strconv.Itoa(report.ValidItems()))
	table.AddRow("Invalid items", strconv.Itoa(report.InvalidItems()))
	table.AddRow("Discounts applied", strconv.Itoa(report.DiscountsCount))
	table.AddRow("Original total", challenges.FormatDollars(report.OriginalTotal))
	table.AddRow("Discounted total", challenges.FormatDollars(report.DiscountedTotal))
	table.AddRow("Total savings", challenges.FormatDollars(report.TotalSavings))
	out.Table(table)

	out.Heading("Tiered discounts")
	for _, p := range []float64{5, 15, 25, 55} {
		d, pct := challenges.TieredDiscount(p)
		out.Linef("%s -> %s (%d%% off)", challenges.FormatDollars(p), challenges.FormatDollars(d), pct)
	}

	out.Heading("With 8% tax")
	for _, p := range prices {
		if v, ok := challenges.PriceWithTax(p, challenges.DefaultDiscountThreshold, challenges.DefaultDiscountRate, challenges.DefaultTaxRate); ok {
			out.Linef("%s -> %s", p, challenges.FormatDollars(v))
		}
	}
	return nil
}
