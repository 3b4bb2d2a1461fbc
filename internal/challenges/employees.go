package challenges

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FlattenDepartments flattens departments into one list of uppercase names
// longer than minLen runes.
func FlattenDepartments(depts [][]string, minLen int) []string {
	var out []string
	for _, dept := range depts {
		for _, name := range dept {
			if utf8.RuneCountInString(name) > minLen {
				out = append(out, strings.ToUpper(name))
			}
		}
	}
	return out
}

// FlattenNested flattens arbitrarily nested []any / []string values into
// their string leaves, depth first. Non-string leaves are formatted with %v.
func FlattenNested(v any) []string {
	var out []string
	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case nil:
		case string:
			out = append(out, t)
		case []string:
			out = append(out, t...)
		case [][]string:
			for _, s := range t {
				out = append(out, s...)
			}
		case []any:
			for _, e := range t {
				walk(e)
			}
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	walk(v)
	return out
}
