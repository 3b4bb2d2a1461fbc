package challenges

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// punctuation is the ASCII punctuation set stripped before counting.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StopWords are the common English words dropped when WordOptions.RemoveStopWords is set.
var StopWords = map[string]struct{}{
	"is": {}, "a": {}, "an": {}, "the": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "and": {}, "or": {}, "but": {}, "with": {}, "from": {}, "as": {},
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// WordOptions controls CountWords.
type WordOptions struct {
	MinLength       int
	KeepCase        bool
	RemoveStopWords bool
}

// WordCount is one (word, count) pair.
type WordCount struct {
	Word  string
	Count int
}

// WordCounts is a frequency table that remembers first-seen order.
type WordCounts struct {
	order  []string
	counts map[string]int
}

// NewWordCounts tallies words in the order given.
func NewWordCounts(words []string) WordCounts {
	wc := WordCounts{counts: make(map[string]int, len(words))}
	for _, w := range words {
		wc.Add(w)
	}
	return wc
}

// Add increments the count for word.
func (wc *WordCounts) Add(word string) {
	if wc.counts == nil {
		wc.counts = make(map[string]int)
	}
	if _, ok := wc.counts[word]; !ok {
		wc.order = append(wc.order, word)
	}
	wc.counts[word]++
}

// Get returns the count for word (0 if absent).
func (wc WordCounts) Get(word string) int { return wc.counts[word] }

// Unique returns the number of distinct words.
func (wc WordCounts) Unique() int { return len(wc.order) }

// Total returns the number of words counted.
func (wc WordCounts) Total() int {
	total := 0
	for _, c := range wc.counts {
		total += c
	}
	return total
}

// Pairs returns every (word, count) in first-seen order.
func (wc WordCounts) Pairs() []WordCount {
	out := make([]WordCount, len(wc.order))
	for i, w := range wc.order {
		out[i] = WordCount{Word: w, Count: wc.counts[w]}
	}
	return out
}

// Map returns a copy of the counts as a plain map.
func (wc WordCounts) Map() map[string]int {
	out := make(map[string]int, len(wc.counts))
	for w, c := range wc.counts {
		out[w] = c
	}
	return out
}

// MostCommon returns the n most frequent words, ties kept in first-seen
// order. n <= 0 returns all of them.
func (wc WordCounts) MostCommon(n int) []WordCount {
	pairs := wc.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// StripPunctuation removes ASCII punctuation characters from text.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// CountWords counts word frequencies in text after stripping punctuation.
func CountWords(text string, opts WordOptions) WordCounts {
	clean := StripPunctuation(text)
	if !opts.KeepCase {
		clean = strings.ToLower(clean)
	}

	minLen := opts.MinLength
	if minLen < 1 {
		minLen = 1
	}

	wc := WordCounts{counts: make(map[string]int)}
	for _, w := range strings.Fields(clean) {
		if utf8.RuneCountInString(w) < minLen {
			continue
		}
		if opts.RemoveStopWords {
			if _, stop := StopWords[w]; stop {
				continue
			}
		}
		wc.Add(w)
	}
	return wc
}

// WordsRegexp extracts lowercased word tokens with a \b\w+\b scan.
func WordsRegexp(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// TextAnalysis summarises a piece of text.
type TextAnalysis struct {
	TotalWords         int
	UniqueWords        int
	AvgWordLength      float64
	MostCommonWord     string
	MostCommonCount    int
	VocabularyRichness float64
}

// AnalyzeText computes totals, average word length and vocabulary richness.
func AnalyzeText(text string) TextAnalysis {
	wc := CountWords(text, WordOptions{})
	total := wc.Total()
	if total == 0 {
		return TextAnalysis{}
	}

	letters := 0
	for _, p := range wc.Pairs() {
		letters += utf8.RuneCountInString(p.Word) * p.Count
	}
	top := wc.MostCommon(1)[0]

	return TextAnalysis{
		TotalWords:         total,
		UniqueWords:        wc.Unique(),
		AvgWordLength:      Round(float64(letters)/float64(total), 2),
		MostCommonWord:     top.Word,
		MostCommonCount:    top.Count,
		VocabularyRichness: Round(float64(wc.Unique())/float64(total)*100, 2),
	}
}

// Round rounds x to the given number of decimal places. Ties go to the even
// neighbour, so 0.125 rounds to 0.12 and 6.25 to 6.2.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}
