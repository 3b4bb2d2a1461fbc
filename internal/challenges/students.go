package challenges

import (
	"sort"
)

// PassingScore is the threshold (exclusive) for the ranking challenge.
const PassingScore = 80

// Student is a name and exam score.
type Student struct {
	Name  string
	Score int
}

// RankedStudent is a student with a 1-based rank and letter grade.
type RankedStudent struct {
	Rank  int
	Name  string
	Score int
	Grade string
}

// Grade maps a score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// SortStudents orders students by score descending, then name ascending.
// The input slice is not modified.
func SortStudents(students []Student) []Student {
	out := append([]Student(nil), students...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterAbove keeps students whose score is strictly greater than min.
func FilterAbove(students []Student, min int) []Student {
	var out []Student
	for _, s := range students {
		if s.Score > min {
			out = append(out, s)
		}
	}
	return out
}

// RankStudents filters by minScore (exclusive), sorts, and assigns ranks and
// grades. maxResults <= 0 means no limit.
func RankStudents(students []Student, minScore, maxResults int) []RankedStudent {
	sorted := SortStudents(FilterAbove(students, minScore))

	ranked := make([]RankedStudent, 0, len(sorted))
	for i, s := range sorted {
		ranked = append(ranked, RankedStudent{
			Rank:  i + 1,
			Name:  s.Name,
			Score: s.Score,
			Grade: Grade(s.Score),
		})
	}
	if maxResults > 0 && maxResults < len(ranked) {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// TopStudents returns the first n ranked students above minScore.
func TopStudents(students []Student, n, minScore int) []RankedStudent {
	return RankStudents(students, minScore, n)
}

// Stats summarises a class.
type Stats struct {
	TotalStudents int
	Average       float64
	Highest       int
	Lowest        int
	Median        int
	PassingCount  int
	PassingRate   float64
}

// ClassStats computes summary statistics. It reports false for an empty class.
// Median is the upper median (sorted[n/2]).
func ClassStats(students []Student) (Stats, bool) {
	if len(students) == 0 {
		return Stats{}, false
	}

	scores := make([]int, len(students))
	sum := 0
	passing := 0
	for i, s := range students {
		scores[i] = s.Score
		sum += s.Score
		if s.Score > PassingScore {
			passing++
		}
	}
	sort.Ints(scores)

	n := len(scores)
	return Stats{
		TotalStudents: n,
		Average:       Round(float64(sum)/float64(n), 2),
		Highest:       scores[n-1],
		Lowest:        scores[0],
		Median:        scores[n/2],
		PassingCount:  passing,
		PassingRate:   Round(float64(passing)/float64(n)*100, 1),
	}, true
}

// ScoreGroup is a bucket of students whose scores share a range.
type ScoreGroup struct {
	Low      int
	High     int
	Students []Student
}

// GroupByScoreRange buckets students by floor(score/size)*size. Groups are
// returned highest range first; members are sorted as in RankStudents.
func GroupByScoreRange(students []Student, size int) []ScoreGroup {
	if size <= 0 {
		size = 10
	}

	buckets := make(map[int][]Student)
	for _, s := range students {
		key := floorDiv(s.Score, size) * size
		buckets[key] = append(buckets[key], s)
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	groups := make([]ScoreGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, ScoreGroup{
			Low:      k,
			High:     k + size - 1,
			Students: SortStudents(buckets[k]),
		})
	}
	return groups
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
