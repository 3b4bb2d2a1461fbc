package lessons

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"practicejournal/internal/challenges"
	"practicejournal/internal/ui"
)

func init() {
	Register(&lesson{
		id:    "day-02",
		title: "Strings",
		brief: `# Day 2: Strings

Concatenation and repetition, indexing from either end, slicing with a step,
reversing, formatting with verbs, and raw string literals.

**Challenge:** count word frequencies in a sentence, ignoring case and
punctuation.`,
		run: runDay02,
	})
}

func runDay02(ctx context.Context, s *Session) error {
	out := s.Out

	out.Section("Concatenation")
	message := "Hello" + ", " + "Akanksha" + "!"
	out.Line(message)
	out.Line("My age is " + strconv.Itoa(30))
	out.Line(strings.Repeat(message, 2))

	out.Heading("Indexing and Slicing")
	name := "Akanksha"
	first, _ := charAt(name, 0)
	secondLast, _ := charAt(name, -2)
	out.Linef("First Character: %s", first)
	out.Linef("Second to last Character: %s", secondLast)

	text := "My name is Akanksha, this is my third python class"
	out.Line(substr(text, 3, 7, 1))
	out.Line(substr(text, 3, none, 1))
	out.Line(substr(text, 0, none, 2))
	out.Line(reverse(text))
	out.Linef("Length of string %d", utf8.RuneCountInString(text))

	out.Heading("Formatting")
	out.Linef("My name is %s, I am %d years old and I live in %s", "Bob", 23, "New York")
	a, b := 10, 40
	out.Linef("The sum of A and B is %d", a+b)
	out.Line("doesn't", `"Yes," they said.`)
	out.Line("C:\\some\\name")
	out.Line(`C:\some\name`)

	out.Section("Task 1: Personalized Greeting")
	fullName := "Akanksha" + " " + "Sharma"
	out.Linef("Hello, %s! Welcome to Day 2.", fullName)

	out.Section("Task 2: Decorative Separator")
	out.Line(strings.Repeat("*", 30))

	out.Section("Task 3: Character Extractor")
	word := "Fundamentals"
	c0, _ := charAt(word, 0)
	cLast, _ := charAt(word, -1)
	c4, _ := charAt(word, 4)
	out.Linef("First character is %s", c0)
	out.Linef("Last character is %s", cLast)
	out.Linef("Character at index 4 is %s", c4)

	out.Section("Task 4: Substring Creator")
	out.Line(substr(word, 0, 4, 1))
	out.Line(substr(word, 5, 11, 1))
	out.Line(substr(word, none, none, 2))

	out.Section("Task 5: Movie Title Length")
	movie, err := s.Ask(ctx, "What is your favorite movie? ", "Inception")
	if err != nil {
		return err
	}
	out.Linef("Your favorite movie, '%s', has %d characters.", movie, utf8.RuneCountInString(movie))

	out.Section("Task 6: User Profile")
	out.Line("User: CodeMaster23\nJoined: 2024\n--- Profile End ---")

	out.Section("Task 7: Reversible Fun")
	userWord, err := s.Ask(ctx, "Enter a short word: ", "madam")
	if err != nil {
		return err
	}
	out.Line(userWord + " <-> " + reverse(userWord))
	if userWord != "" && strings.EqualFold(userWord, reverse(userWord)) {
		out.Success("%s is a palindrome", userWord)
	}

	out.Section("Challenge: Word Frequency Counter")
	sentence := "Python is amazing. Python is fast. Is python easy? YES!"
	out.Line("Original text:", sentence)
	out.Line("Without punctuation:", challenges.StripPunctuation(sentence))

	counts := challenges.CountWords(sentence, challenges.WordOptions{})
	table := ui.NewSimpleTable("Word counts", []string{"Word", "Count"})
	var bars []ui.Bar
	for _, wc := range counts.MostCommon(0) {
		table.AddRow(wc.Word, strconv.Itoa(wc.Count))
		bars = append(bars, ui.Bar{Label: wc.Word, Value: wc.Count})
	}
	out.Table(table)
	out.Raw(ui.BarChart(bars, 20, out.Styles()))

	out.Heading("Most common")
	for _, wc := range counts.MostCommon(3) {
		out.Linef("%s: %d", wc.Word, wc.Count)
	}

	out.Heading("Without stop words")
	filtered := challenges.CountWords(sentence, challenges.WordOptions{RemoveStopWords: true})
	for _, wc := range filtered.Pairs() {
		out.Linef("%s: %d", wc.Word, wc.Count)
	}

	out.Heading("Regexp tokens")
	tokens := challenges.WordsRegexp(sentence)
	out.Line(list(tokens))
	top := challenges.NewWordCounts(tokens).MostCommon(1)
	if len(top) > 0 {
		out.Linef("Most common token: %s (%d)", top[0].Word, top[0].Count)
	}

	out.Heading("Text analysis")
	an := challenges.AnalyzeText(sentence)
	stats := []struct {
		key string
		val any
	}{
		{"total_words", an.TotalWords},
		{"unique_words", an.UniqueWords},
		{"avg_word_length", an.AvgWordLength},
		{"most_common_word", an.MostCommonWord},
		{"most_common_count", an.MostCommonCount},
		{"vocabulary_richness", an.VocabularyRichness},
	}
	for _, st := range stats {
		out.Linef("%s: %v", ui.TitleKey(st.key), st.val)
	}
	return nil
}
