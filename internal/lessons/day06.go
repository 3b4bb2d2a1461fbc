package lessons

import (
	"context"
	"strconv"
	"strings"

	"practicejournal/internal/challenges"
)

func init() {
	Register(&lesson{
		id:    "day-06",
		title: "While Loops, break and continue",
		brief: `# Day 6: While Loops, break and continue

A countdown, an input validation loop that also accepts ` + "`exit`" + `, a
search that stops at the first match, a scan that skips invalid records, and
a small ATM.

**Challenge:** flatten department lists into one list of long, uppercased
names.`,
		run: runDay06,
	})
}

func runDay06(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Countdown")
	out.Line("Starting countdown.....")
	for countdown := 10; countdown > 0; countdown-- {
		out.Line(countdown)
	}
	out.Line("Liftoff!!!")

	out.Section("Input Validation")
	valid, err := askInRange(ctx, s)
	if err != nil {
		return err
	}
	if valid > 0 {
		out.Line("Processing with valid number:", valid)
	}

	out.Section("Gene Search")
	genes := []string{"BRCA1", "TP53", "PTEN", "EGFR", "KRAS", "TP53"}
	for _, target := range []string{"TP53", "MYC"} {
		out.Linef("Searching for %s in gene list.......", target)
		found := -1
		for i, g := range genes {
			if g == target {
				found = i
				break
			}
		}
		if found >= 0 {
			out.Linef("Found %s at index %d", target, found)
		} else {
			out.Linef("Target gene %s not found in the list", target)
		}
	}

	out.Section("Status Processing")
	status := []string{"Healthy", "Cancer", "Invalid", "Cancer", "Healthy", "Invalid", "Cancer"}
	count := 0
	for _, st := range status {
		if st == "Invalid" || st == "Healthy" {
			out.Linef("Skipping %s entry", st)
			continue
		}
		out.Linef("Processing %s", st)
		count++
	}
	out.Linef("Finished processing with total %d valid entries", count)

	out.Section("ATM")
	if err := runATM(ctx, s, 500); err != nil {
		return err
	}

	out.Section("Challenge: Employee Flattener")
	depts := [][]string{{"Alice", "Bob"}, {"Charlie", "David", "Eve"}, {"Frank"}}
	for i, d := range depts {
		out.Linef("Department %d: %s", i+1, list(d))
	}
	out.Line("Names longer than 4, uppercased:", list(challenges.FlattenDepartments(depts, 4)))
	out.Line("All names:", list(challenges.FlattenDepartments(depts, 0)))
	nested := []any{"Zoe", []any{"Yan", []any{"Xia", []string{"Walt"}}}}
	out.Line("Deeply nested:", list(challenges.FlattenNested(nested)))
	return nil
}

// askInRange loops until it reads a number in 1..100. Typing exit stops
// the loop and returns 0.
func askInRange(ctx context.Context, s *Session) (int, error) {
	for {
		answer, err := s.Ask(ctx, "Enter a number between 1 and 100 (or 'exit'): ", "50")
		if err != nil {
			return 0, err
		}
		answer = strings.TrimSpace(answer)
		if strings.EqualFold(answer, "exit") {
			s.Out.Line("Exiting input.")
			return 0, nil
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			s.Out.Warn("Invalid input. Please enter a number")
			continue
		}
		if n <= 0 || n > 100 {
			s.Out.Warn("Please enter a number between 1 and 100")
			continue
		}
		s.Out.Line("Thank you for entering a valid number")
		return n, nil
	}
}

// runATM loops over deposit/withdraw/quit until the user quits.
func runATM(ctx context.Context, s *Session, balance float64) error {
	out := s.Out
	for {
		out.Linef("Your current balance is $%.2f", balance)
		action, err := s.Ask(ctx, "Options: (d)eposit, (w)ithdraw, (q)uit: ", "q")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(action)) {
		case "q":
			out.Line("Thank you for using the ATM")
			out.Line("ATM session ended.")
			return nil
		case "w":
			amount, ok, err := s.AskFloat(ctx, "Enter the amount to withdraw: $ ", 0)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if amount < 0 {
				out.Warn("Amount must be positive")
				continue
			}
			if amount > balance {
				out.Warn("Insufficient balance")
				continue
			}
			balance -= amount
			out.Linef("Withdrawal successful. Your new balance is $%.2f", balance)
		case "d":
			amount, ok, err := s.AskFloat(ctx, "Enter the amount to deposit: $ ", 0)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if amount < 0 {
				out.Warn("Amount must be positive")
				continue
			}
			balance += amount
			out.Linef("Deposit successful. Your new balance is $%.2f", balance)
		default:
			out.Warn("Invalid option. Please choose d, w, or q")
		}
	}
}
