package lessons

import (
	"context"
	"math"
	"strconv"

	"practicejournal/internal/challenges"
	"practicejournal/internal/ui"
)

func init() {
	Register(&lesson{
		id:    "day-03",
		title: "Arithmetic",
		brief: `# Day 3: Arithmetic

The basic operators, true vs floor division, remainders that follow the
divisor's sign, powers and square roots, and operator precedence. Ends with a
small calculator that reads two numbers.

**Challenge:** rank students scoring above 80, highest first, ties by name.`,
		run: runDay03,
	})
}

func runDay03(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Operators")
	a, b := 10, 48
	out.Linef("The addition of A and B is %d", a+b)
	out.Linef("The subtraction of A and B is %d", a-b)
	out.Linef("The multiplication of A and B is %d", a*b)
	out.Linef("The division of A and B is %s", num(float64(a)/float64(b)))

	out.Heading("Floor division and modulus")
	for _, p := range [][2]int{{10, 3}, {-7, 2}, {7, -2}, {15, 4}} {
		out.Linef("%d // %d = %d    %d %% %d = %d", p[0], p[1], floorDiv(p[0], p[1]), p[0], p[1], floorMod(p[0], p[1]))
	}
	out.Linef("Go's / truncates: -7 / 2 = %d, -7 %% 2 = %d", -7/2, -7%2)

	out.Heading("Powers")
	out.Linef("10 ** 2 = %d", ipow(10, 2))
	out.Linef("The square root of 9 is %s", num(math.Sqrt(9)))
	out.Linef("2 ** 3 ** 2 = %d", ipow(2, ipow(3, 2)))

	out.Heading("Precedence")
	out.Line(10 + 3*2)
	out.Line((10 + 3) * 2)
	out.Line(num(100.0 / 10 * 2))
	out.Line(num(100.0 / (10 * 2)))
	out.Linef("100 - 5 * 3 / (2 + 3) ** 2 + 10 = %s", num(100-5*3/math.Pow(2+3, 2)+10))
	out.Linef("(100 - 5) * 3 / 2 + 3 ** 2 + 10 = %s", num((100-5)*3.0/2+math.Pow(3, 2)+10))
	out.Linef("12 / 4 * 2 + 5 - 1 = %s", num(12.0/4*2+5-1))

	out.Heading("Division types")
	for _, den := range []int{5, 6} {
		df := float64(20) / float64(den)
		di := floorDiv(20, den)
		out.Linef("20 / %d = %s (%T), 20 // %d = %d (%T)", den, num(df), df, den, di, di)
	}

	out.Section("Simple Sum Calculator")
	first, ok1, err := s.AskFloat(ctx, "Enter your first number: ", 12)
	if err != nil {
		return err
	}
	second, ok2, err := s.AskFloat(ctx, "Enter your second number: ", 30)
	if err != nil {
		return err
	}
	if ok1 && ok2 {
		out.Linef("The sum of %s and %s is %s", num(first), num(second), num(first+second))
	} else {
		out.Line("Skipping the sum: both inputs must be numbers.")
	}

	n, ok, err := s.AskInt(ctx, "Enter a whole number: ", 7)
	if err != nil {
		return err
	}
	if ok {
		r := floorMod(n, 2)
		out.Linef("The number %d %% 2 is %d.", n, r)
		if r == 0 {
			out.Line("This number is even.")
		} else {
			out.Line("This number is odd.")
		}
	}

	out.Section("Challenge: Student Ranking")
	students := []challenges.Student{
		{Name: "Alice", Score: 88},
		{Name: "Bob", Score: 72},
		{Name: "Charlie", Score: 95},
		{Name: "David", Score: 88},
		{Name: "Eve", Score: 79},
	}
	for _, st := range students {
		out.Linef("  %-10s - Score: %d", st.Name, st.Score)
	}

	ranked := challenges.RankStudents(students, challenges.PassingScore, 0)
	table := ui.NewSimpleTable("Students above 80", []string{"Rank", "Name", "Score", "Grade"})
	for _, r := range ranked {
		table.AddRow(strconv.Itoa(r.Rank), r.Name, strconv.Itoa(r.Score), r.Grade)
	}
	out.Table(table)

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	out.Line("Final result:", list(names))

	if st, ok := challenges.ClassStats(students); ok {
		out.Heading("Class statistics")
		out.Linef("Total: %d, Average: %.2f, Median: %d", st.TotalStudents, st.Average, st.Median)
		out.Linef("Highest: %d, Lowest: %d", st.Highest, st.Lowest)
		out.Linef("Passing: %d (%.1f%%)", st.PassingCount, st.PassingRate)
	}

	out.Heading("Score ranges")
	for _, g := range challenges.GroupByScoreRange(students, 10) {
		members := make([]string, len(g.Students))
		for i, st := range g.Students {
			members[i] = st.Name
		}
		out.Linef("%d-%d: %s", g.Low, g.High, list(members))
	}
	return nil
}
