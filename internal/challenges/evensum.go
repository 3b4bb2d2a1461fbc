package challenges

import (
	"math"
)

// asInt reports the integer value of v for Go's signed and unsigned integer
// kinds. Everything else (floats, strings, bools, nil) is rejected.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

func isEven(n int) bool { return n%2 == 0 }

// SumEvenNumbers sums the even integers among args, ignoring anything that
// is not an integer. No arguments sum to 0.
func SumEvenNumbers(args ...any) int {
	total := 0
	for _, a := range args {
		if n, ok := asInt(a); ok && isEven(n) {
			total += n
		}
	}
	return total
}

// SumOddNumbers sums the odd integers among args.
func SumOddNumbers(args ...any) int {
	total := 0
	for _, a := range args {
		if n, ok := asInt(a); ok && !isEven(n) {
			total += n
		}
	}
	return total
}

// EvenOptions tunes SumEvenWith.
type EvenOptions struct {
	// ExcludeZero skips zero values.
	ExcludeZero bool
	// AllowFloats truncates float arguments toward zero before testing them.
	AllowFloats bool
}

// SumEvenWith is SumEvenNumbers with options.
func SumEvenWith(opts EvenOptions, args ...any) int {
	total := 0
	for _, a := range args {
		if opts.AllowFloats {
			switch f := a.(type) {
			case float64:
				a = int(math.Trunc(f))
			case float32:
				a = int(math.Trunc(float64(f)))
			}
		}
		n, ok := asInt(a)
		if !ok {
			continue
		}
		if n == 0 && opts.ExcludeZero {
			continue
		}
		if isEven(n) {
			total += n
		}
	}
	return total
}

// EvenStats describes the even integers found in an argument list.
type EvenStats struct {
	Sum     int
	Count   int
	Average float64
	Min     *int
	Max     *int
	Values  []int
}

// AnalyzeEven collects statistics over the even integers in args.
// Min and Max are nil when there are none.
func AnalyzeEven(args ...any) EvenStats {
	var s EvenStats
	for _, a := range args {
		n, ok := asInt(a)
		if !ok || !isEven(n) {
			continue
		}
		s.Values = append(s.Values, n)
		s.Sum += n
		if s.Min == nil || n < *s.Min {
			v := n
			s.Min = &v
		}
		if s.Max == nil || n > *s.Max {
			v := n
			s.Max = &v
		}
	}
	s.Count = len(s.Values)
	if s.Count > 0 {
		s.Average = float64(s.Sum) / float64(s.Count)
	}
	return s
}

// SumEvenNested sums even integers, descending into []any and []int arguments.
func SumEvenNested(args ...any) int {
	total := 0
	for _, a := range args {
		switch t := a.(type) {
		case []any:
			total += SumEvenNested(t...)
		case []int:
			for _, n := range t {
				if isEven(n) {
					total += n
				}
			}
		default:
			if n, ok := asInt(a); ok && isEven(n) {
				total += n
			}
		}
	}
	return total
}

// IntRange returns the integers in [start, stop).
func IntRange(start, stop int) []int {
	if stop <= start {
		return nil
	}
	out := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, i)
	}
	return out
}
