package lessons

import (
	"context"
	"strconv"
	"strings"

	"practicejournal/internal/challenges"
)

func init() {
	Register(&lesson{
		id:    "day-07",
		title: "For Loops",
		brief: `# Day 7: For Loops

Counting loops with ranges and steps, looping over the characters of a
string, early exit with break, skipping with continue, and loops that read
until the user types ` + "`quit`" + `.

**Challenge:** sum only the even integers from a mixed argument list.`,
		run: runDay07,
	})
}

func runDay07(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Ranges")
	out.Line("2 to 10:", list(challenges.IntRange(2, 11)))
	var evens, backwards []int
	for i := 0; i <= 10; i += 2 {
		evens = append(evens, i)
	}
	for i := 10; i > 0; i-- {
		backwards = append(backwards, i)
	}
	out.Line("Even numbers:", list(evens))
	out.Line("10 down to 1:", list(backwards))

	out.Heading("Characters")
	var chars []string
	for _, r := range "Methylation" {
		chars = append(chars, string(r))
	}
	out.Line(strings.Join(chars, " "))

	out.Heading("Even or odd")
	for i := 1; i <= 10; i++ {
		if floorMod(i, 2) == 0 {
			out.Linef("%d is even", i)
		} else {
			out.Linef("%d is odd", i)
		}
	}

	out.Heading("Stop at 5")
	for i := 1; i <= 10; i++ {
		out.Linef("The number is %d", i)
		if i == 5 {
			out.Line("Found the number 5, stopping now.")
			break
		}
	}

	out.Section("Task 1: Squares")
	for i := 1; i <= 7; i++ {
		out.Linef("The square of %d is %d", i, i*i)
	}

	out.Section("Task 2: Balance Drain")
	for balance := 100; balance > 0; balance -= 20 {
		out.Linef("Balance is %d", balance)
	}

	out.Section("Task 3: Multiples of 5 from 50 to 20")
	var fives []int
	for i := 50; i >= 20; i-- {
		if i%5 == 0 {
			fives = append(fives, i)
		}
	}
	out.Line(list(fives))

	out.Section("Task 4: Number Loop")
	if err := numberLoop(ctx, s); err != nil {
		return err
	}

	out.Section("Task 5: Skip Multiples of 3")
	var kept []int
	for i := 1; i <= 20; i++ {
		if i%3 == 0 {
			continue
		}
		kept = append(kept, i)
	}
	out.Line(list(kept))

	out.Section("Task 6: Multiples of 7")
	var sevens []int
	for i := 1; i <= 50; i++ {
		if i%7 == 0 {
			sevens = append(sevens, i)
		}
	}
	out.Line(list(sevens))

	out.Section("Task 7: Three Attempts")
	if err := passwordAttempts(ctx, s, "dna123", 3); err != nil {
		return err
	}

	out.Section("Task 8: Skip Multiples of 6")
	var notSix []int
	for i := 1; i <= 30; i++ {
		if i%2 == 0 && i%3 == 0 {
			continue
		}
		notSix = append(notSix, i)
	}
	out.Line(list(notSix))

	out.Section("Task 9: Genome Scan")
	for c := 1; c <= 23; c++ {
		out.Linef("Processing DNA on Chromosome %d...", c)
	}
	out.Line("Genome scan complete.")

	out.Section("Challenge: Even Number Summer")
	out.Linef("SumEvenNumbers(2, 7, 8, 9, 5) = %d", challenges.SumEvenNumbers(2, 7, 8, 9, 5))
	out.Linef("SumEvenNumbers() = %d", challenges.SumEvenNumbers())
	out.Linef("SumEvenNumbers(1, 3, 5) = %d", challenges.SumEvenNumbers(1, 3, 5))
	out.Linef(`SumEvenNumbers(2, "4", 6.0, true, nil, 10) = %d`, challenges.SumEvenNumbers(2, "4", 6.0, true, nil, 10))
	out.Linef("SumOddNumbers(2, 7, 8, 9, 5) = %d", challenges.SumOddNumbers(2, 7, 8, 9, 5))
	out.Linef("SumEvenWith(AllowFloats, 4.0, 6.7, 3) = %d",
		challenges.SumEvenWith(challenges.EvenOptions{AllowFloats: true}, 4.0, 6.7, 3))
	out.Linef("SumEvenNested(1, [2 4], [6 [8]]) = %d",
		challenges.SumEvenNested(1, []int{2, 4}, []any{6, []any{8}}))

	st := challenges.AnalyzeEven(2, 7, 8, 9, 5, 12)
	out.Heading("Even analysis")
	out.Linef("Values: %s", list(st.Values))
	out.Linef("Sum: %d, Count: %d, Average: %.2f", st.Sum, st.Count, st.Average)
	if st.Min != nil && st.Max != nil {
		out.Linef("Min: %d, Max: %d", *st.Min, *st.Max)
	}
	return nil
}

// numberLoop reads numbers until one is above 100 or the user types quit.
func numberLoop(ctx context.Context, s *Session) error {
	s.Out.Line("Enter a number (or type 'quit' to exit).")
	for {
		answer, err := s.Ask(ctx, "Enter a number: ", "quit")
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if strings.EqualFold(answer, "quit") {
			s.Out.Line("Exiting program.")
			break
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			s.Out.Warn("Invalid input: %q is not a whole number.", answer)
			continue
		}
		if n > 100 {
			s.Out.Line("Too high!")
			break
		}
		s.Out.Line("Nice number!")
	}
	s.Out.Line("Program finished.")
	return nil
}

// passwordAttempts allows a fixed number of tries at the password.
func passwordAttempts(ctx context.Context, s *Session, correct string, tries int) error {
	for i := 1; i <= tries; i++ {
		guess, err := s.Ask(ctx, "Enter your password: ", "")
		if err != nil {
			return err
		}
		if guess == correct {
			s.Out.Success("Login Successful!")
			return nil
		}
		s.Out.Warn("Incorrect password! Try again")
	}
	s.Out.Error("Too many failed attempts. Account locked.")
	return nil
}
