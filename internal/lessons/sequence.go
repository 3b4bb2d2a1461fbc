package lessons

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// none marks an omitted slice bound, like leaving it blank in s[a:b:c].
const none = math.MinInt

// sliceOf returns xs[start:stop:step] with negative indexes counted from
// the end, out-of-range bounds clamped, and a negative step walking
// backwards. step 0 is treated as 1.
func sliceOf[T any](xs []T, start, stop, step int) []T {
	n := len(xs)
	if step == 0 {
		step = 1
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	norm := func(i, def int) int {
		if i == none {
			return def
		}
		if i < 0 {
			i += n
		}
		return max(lower, min(upper, i))
	}

	var out []T
	if step > 0 {
		for i := norm(start, 0); i < norm(stop, n); i += step {
			out = append(out, xs[i])
		}
		return out
	}
	for i := norm(start, n-1); i > norm(stop, -1); i += step {
		out = append(out, xs[i])
	}
	return out
}

// substr is sliceOf over the runes of s.
func substr(s string, start, stop, step int) string {
	return string(sliceOf([]rune(s), start, stop, step))
}

// reverse returns s backwards.
func reverse(s string) string {
	return substr(s, none, none, -1)
}

// at returns xs[i] with negative indexes counted from the end.
func at[T any](xs []T, i int) (T, bool) {
	if i < 0 {
		i += len(xs)
	}
	if i < 0 || i >= len(xs) {
		var zero T
		return zero, false
	}
	return xs[i], true
}

// charAt is at over the runes of s.
func charAt(s string, i int) (string, bool) {
	r, ok := at([]rune(s), i)
	if !ok {
		return "", false
	}
	return string(r), true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder that takes the sign of the divisor.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// ipow raises base to a non-negative integer exponent.
func ipow(base, exp int) int {
	result := 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// num formats a float the short way, always showing a decimal point:
// 4.0, 0.2083333333333333, 1e+21.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// list formats a slice as [a, b, c] with strings quoted.
func list[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = repr(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// repr formats a value for display: strings quoted, floats via num.
func repr(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case float64:
		return num(t)
	default:
		return fmt.Sprint(t)
	}
}

// dict formats a map as {k: v, ...} with keys sorted, since map iteration
// order is random.
func dict[K cmp.Ordered, V any](m map[K]V) string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = repr(k) + ": " + repr(m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
