package lessons

import (
	"context"
	"strconv"

	"practicejournal/internal/challenges"
)

func init() {
	Register(&lesson{
		id:    "day-01",
		title: "Data Types and Variables",
		brief: `# Day 1: Data Types and Variables

Integers, floats, strings and booleans; printing with labels and format
verbs; inspecting types; converting between types; reassigning variables.

**Challenge:** clean a messy list of tags (trim, lowercase, drop blanks and
duplicates).`,
		run: runDay01,
	})
}

func runDay01(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Data Types")
	myAge := 35
	piValue := 3.144335
	userName := "Akanksha"
	isLearning := true
	var databaseResult any
	out.Line(myAge)
	out.Line(piValue)
	out.Line(userName)
	out.Line(isLearning)
	out.Line(databaseResult)
	out.Line("My age is:", myAge)
	out.Line("The value of pi is:", piValue)
	out.Linef("My name is %s, and my age is %d", userName, myAge)
	out.Linef("The value of pi is %.3f", piValue)

	out.Heading("Types")
	for _, v := range []any{myAge, piValue, userName, isLearning, databaseResult} {
		out.Linef("%v %T", v, v)
	}

	out.Heading("Type Conversion")
	age := 26
	out.Linef("%v %T", age, age)
	ageF := float64(age)
	out.Linef("%s %T", num(ageF), ageF)
	ageS := num(ageF)
	out.Linef("%s %T", ageS, ageS)
	for _, in := range []string{"", "hello"} {
		truthy := in != ""
		out.Linef("%q is truthy: %v", in, truthy)
	}

	out.Section("Task 1: Personal Details")
	firstName, lastName := "Akanksha", "Sharma"
	currentYear, birthYear := 2025, 1998
	approxAge := currentYear - birthYear
	out.Linef("My approximate age is %d", approxAge)
	out.Linef("My name is %s %s, and I am %d years old", firstName, lastName, approxAge)

	out.Section("Task 2: Product Information")
	productName := "Dabur"
	productPrice := 30.69
	quantity := 1000
	out.Linef("Product Name: %s (%T)", productName, productName)
	out.Linef("Product price: $%.2f (%T)", productPrice, productPrice)
	out.Linef("Quantity in stock: %d (%T)", quantity, quantity)

	out.Section("Task 3: Temperature Conversion")
	celsius := 24.5
	fahrenheit := celsius*9/5 + 32
	out.Linef("%s°C is %s°F.", num(celsius), num(fahrenheit))

	out.Section("Task 4: Book Info")
	book := "Atomic Habits"
	published := 2018
	isFiction := false
	out.Linef("My favorite book, '%s' (published in %d), is a work of fiction: %v.", book, published, isFiction)
	out.Linef("%T %T %T", book, published, isFiction)

	out.Section("Task 5: User Input and Greeting")
	visitor, err := s.Ask(ctx, "Please enter your name: ", "Visitor")
	if err != nil {
		return err
	}
	out.Linef("%T", visitor)
	favorite, ok, err := s.AskInt(ctx, "Please enter your favorite number: ", 7)
	if err != nil {
		return err
	}
	if ok {
		out.Linef("%T", favorite)
		out.Linef("Hello, %s! Your favorite number is %d.", visitor, favorite)
	}

	out.Section("Task 6: Boolean Flags")
	isLoggedIn, hasAdmin, isWeekend := true, true, false
	out.Line(isLoggedIn, hasAdmin, isWeekend)
	out.Line("logged in and admin:", isLoggedIn && hasAdmin)
	if isLoggedIn && hasAdmin {
		out.Line("Admin access granted")
	}

	out.Section("Task 7: Reassignment")
	var itemCode any = 1023
	out.Linef("the code of this item is %v and its type is: %T", itemCode, itemCode)
	itemCode = "A101-X"
	out.Linef("the code of this item is %v and its type is: %T", itemCode, itemCode)

	out.Section("Task 8: Quote")
	out.Linef("'%s' - %s", "Old is Gold", "Akanksha Sharma")
	price, tax := 100.50, 12.5/100
	out.Linef("Tax on $%s is $%s", num(price), strconv.FormatFloat(price*tax, 'f', 4, 64))

	out.Section("Challenge: Tag Cleaner")
	raw := []string{" python", "programming ", " ", "JS", " REACt ", "python", " php ", ""}
	out.Line("Raw tags:", list(raw))
	clean := challenges.CleanTags(raw, challenges.TagOptions{})
	out.Line("Clean tags:", list(clean))
	out.Line("Sorted:", list(challenges.CleanTags(raw, challenges.TagOptions{Sorted: true})))
	out.Line("Removed:", list(challenges.RemovedTags(raw)))
	out.Linef("Kept %d of %d entries", len(clean), len(raw))
	return nil
}
