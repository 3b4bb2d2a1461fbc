package lessons

import (
	"context"
	"strconv"

	"practicejournal/internal/challenges"
	"practicejournal/internal/ui"
)

func init() {
	Register(&lesson{
		id:    "day-05",
		title: "Comparisons and Conditionals",
		brief: `# Day 5: Comparisons and Conditionals

Comparison operators on numbers and strings, then if/else chains driven by
user input: sign check, password check, adult or minor, even or odd, pass
or fail.

**Challenge:** build an inventory from parallel product and stock lists.`,
		run: runDay05,
	})
}

func runDay05(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Comparison Operators")
	out.Line("5 == 5:", 5 == 5)
	out.Line("5 == 6:", 5 == 6)
	out.Line(`"apple" != "orange":`, "apple" != "orange")
	out.Line("5 > 6:", 5 > 6)
	out.Line("5 <= 6:", 5 <= 6)
	out.Line("10 == 10.0:", 10 == 10.0)
	out.Line(`"A" > "B":`, "A" > "B")

	out.Section("Sign Check")
	n, ok, err := s.AskFloat(ctx, "Enter a number: ", 5)
	if err != nil {
		return err
	}
	if ok {
		switch {
		case n > 0:
			out.Line("The number is positive")
		case n == 0:
			out.Line("The number is zero")
		default:
			out.Line("The number is negative")
		}
	}

	out.Section("Password Check")
	password, err := s.Ask(ctx, "Please enter your password: ", "")
	if err != nil {
		return err
	}
	if password == "123456" {
		out.Success("Access granted")
	} else {
		out.Error("Incorrect password! Access denied")
	}

	out.Section("Gene Expression")
	exp, ok, err := s.AskFloat(ctx, "Enter patient's gene expression level: ", 1.5)
	if err != nil {
		return err
	}
	if ok {
		switch {
		case exp > 0:
			out.Line("The patient has high gene expression")
		case exp == 0:
			out.Line("The patient has low gene expression")
		default:
			out.Line("The patient has no gene expression")
		}
	}

	out.Section("Adult or Minor")
	age, ok, err := s.AskInt(ctx, "Enter your age: ", 21)
	if err != nil {
		return err
	}
	if ok {
		if age >= 18 {
			out.Line("You are an adult")
		} else {
			out.Line("You are a minor")
		}
	}

	out.Section("Even or Odd")
	value, ok, err := s.AskInt(ctx, "Please enter a number: ", 4)
	if err != nil {
		return err
	}
	if ok {
		if floorMod(value, 2) == 0 {
			out.Line("Even")
		} else {
			out.Line("Odd")
		}
	}

	out.Section("Pass or Fail")
	score, ok, err := s.AskFloat(ctx, "Please enter your score (out of 100): ", 75)
	if err != nil {
		return err
	}
	if ok {
		if score >= 70 {
			out.Success("Pass")
		} else {
			out.Error("Fail")
		}
	}

	out.Section("Challenge: Inventory Builder")
	products := []string{"Laptop", "Mouse", "Keyboard", "Monitor"}
	stock := []int{10, 0, 15, 5}
	prices := []float64{999.99, 29.99, 79.99, 299.99}
	out.Line("Products:", list(products))
	out.Line("Stock:", list(stock))

	inv := challenges.BuildInventory(products, stock, nil)
	out.Heading("In-stock inventory")
	for _, it := range inv {
		out.Linef("%s: %d", it.Name, it.Quantity)
	}
	for _, name := range []string{"Apple Laptop", "Mouse"} {
		if q, ok := inv.Get(name); ok {
			out.Linef("Lookup %s: %d in stock", name, q)
		} else {
			out.Linef("Lookup %s: not in inventory", name)
		}
	}

	out.Heading("Padded pairing")
	for _, it := range challenges.ZipLongest(append(products, "Webcam"), stock, 0) {
		out.Linef("%s: %d", it.Name, it.Quantity)
	}

	out.Heading("By stock level")
	for _, g := range challenges.GroupByStockLevel(products, stock) {
		names := make([]string, len(g.Items))
		for i, it := range g.Items {
			names[i] = it.Name
		}
		out.Linef("%s: %s", g.Level, list(names))
	}

	out.Heading("Sorted by quantity")
	for _, it := range challenges.SortedByQuantity(inv) {
		out.Linef("%s: %d", it.Name, it.Quantity)
	}

	brands := map[string]string{"Laptop": "Apple MacBook Pro", "Monitor": `Dell UltraSharp 27"`}
	report := challenges.InventoryReport(products, stock, prices, brands)
	table := ui.NewSimpleTable("Inventory report", []string{"Product", "Qty", "Price", "Value", "Status"})
	for _, it := range report.Items {
		table.AddRow(it.Name, strconv.Itoa(it.Quantity), challenges.FormatDollars(it.Price), challenges.FormatDollars(it.Value), it.Status)
	}
	out.Table(table)
	out.Linef("Products: %d, Items: %d, Value: %s, Low stock: %d",
		report.Stats.TotalProducts, report.Stats.TotalItems,
		challenges.FormatDollars(report.Stats.TotalValue), report.Stats.LowStockItems)
	return nil
}
