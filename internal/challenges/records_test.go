package challenges

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classList = []Student{
	{"Alice", 88},
	{"Bob", 72},
	{"Charlie", 95},
	{"David", 88},
	{"Eve", 79},
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"}, {90, "A"}, {89, "B"}, {80, "B"}, {79, "C"},
		{70, "C"}, {69, "D"}, {60, "D"}, {59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %d", tt.score)
	}
}

func TestRankStudents(t *testing.T) {
	got := RankStudents(classList, PassingScore, 0)
	want := []RankedStudent{
		{Rank: 1, Name: "Charlie", Score: 95, Grade: "A"},
		{Rank: 2, Name: "Alice", Score: 88, Grade: "B"},
		{Rank: 3, Name: "David", Score: 88, Grade: "B"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankStudents() mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, RankStudents(classList, PassingScore, 2), 2)
	assert.Empty(t, RankStudents(classList, 100, 0))
	assert.Empty(t, RankStudents(nil, 0, 0))
}

func TestSortStudentsDoesNotMutate(t *testing.T) {
	in := append([]Student(nil), classList...)
	_ = SortStudents(in)
	assert.Equal(t, classList, in)
}

func TestTopStudents(t *testing.T) {
	top := TopStudents(classList, 1, 0)
	require.Len(t, top, 1)
	assert.Equal(t, "Charlie", top[0].Name)
}

func TestClassStats(t *testing.T) {
	s, ok := ClassStats(classList)
	require.True(t, ok)
	assert.Equal(t, Stats{
		TotalStudents: 5,
		Average:       84.4,
		Highest:       95,
		Lowest:        72,
		Median:        88,
		PassingCount:  3,
		PassingRate:   60,
	}, s)

	_, ok = ClassStats(nil)
	assert.False(t, ok)
}

func TestClassStatsUpperMedian(t *testing.T) {
	s, ok := ClassStats([]Student{{"a", 10}, {"b", 20}, {"c", 30}, {"d", 40}})
	require.True(t, ok)
	assert.Equal(t, 30, s.Median)
}

func TestClassStatsRoundsHalfToEven(t *testing.T) {
	students := []Student{{"top", 95}}
	for i := range 15 {
		students = append(students, Student{fmt.Sprintf("s%02d", i), 50})
	}
	s, ok := ClassStats(students)
	require.True(t, ok)
	assert.Equal(t, 1, s.PassingCount)
	assert.Equal(t, 6.2, s.PassingRate)
}

func TestGroupByScoreRange(t *testing.T) {
	groups := GroupByScoreRange(classList, 10)
	require.Len(t, groups, 3)

	assert.Equal(t, 90, groups[0].Low)
	assert.Equal(t, 99, groups[0].High)
	assert.Equal(t, []Student{{"Charlie", 95}}, groups[0].Students)

	assert.Equal(t, 80, groups[1].Low)
	assert.Equal(t, []Student{{"Alice", 88}, {"David", 88}}, groups[1].Students)

	assert.Equal(t, 70, groups[2].Low)
	assert.Equal(t, []Student{{"Eve", 79}, {"Bob", 72}}, groups[2].Students)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 3, floorDiv(7, 2))
	assert.Equal(t, -4, floorDiv(-7, 2))
	assert.Equal(t, -4, floorDiv(7, -2))
	assert.Equal(t, 3, floorDiv(-7, -2))
	assert.Equal(t, 0, floorDiv(0, 5))
}

var samplePrices = []string{"$10.50", "20.25", "N/A", "$5.00", "free", "15"}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "dollar sign", in: "$10.50", want: 10.5},
		{name: "plain", in: "20.25", want: 20.25},
		{name: "padded", in: "  $12  ", want: 12},
		{name: "not a number", in: "N/A", wantErr: true},
		{name: "word", in: "free", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "digit separators", in: "$1_000.5", want: 1000.5},
		{name: "hex float", in: "0x1p4", wantErr: true},
		{name: "signed hex", in: "-0X10", wantErr: true},
		{name: "leading underscore", in: "_100", wantErr: true},
		{name: "double underscore", in: "1__000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanPrice(t *testing.T) {
	p, ok := CleanPrice("$20")
	require.True(t, ok)
	assert.InDelta(t, 18.0, p, 1e-9)

	p, ok = CleanPrice("10")
	require.True(t, ok)
	assert.Equal(t, 10.0, p)

	_, ok = CleanPrice("free")
	assert.False(t, ok)
}

func TestCleanAndDiscount(t *testing.T) {
	r := CleanAndDiscount(samplePrices, DefaultDiscountThreshold, DefaultDiscountRate)

	require.Len(t, r.CleanPrices, 4)
	assert.InDelta(t, 9.45, r.CleanPrices[0], 0.01)
	assert.InDelta(t, 18.23, r.CleanPrices[1], 0.01)
	assert.Equal(t, 5.0, r.CleanPrices[2])
	assert.InDelta(t, 13.5, r.CleanPrices[3], 0.001)

	assert.Equal(t, []string{"N/A", "free"}, r.SkippedItems)
	assert.Equal(t, 4, r.ValidItems())
	assert.Equal(t, 2, r.InvalidItems())
	assert.Equal(t, 3, r.DiscountsCount)
	assert.InDelta(t, 50.75, r.OriginalTotal, 0.001)
	assert.InDelta(t, 46.18, r.DiscountedTotal, 0.011)
	assert.InDelta(t, 4.58, r.TotalSavings, 0.011)
}

func TestCleanAndDiscountRoundsHalfToEven(t *testing.T) {
	r := CleanAndDiscount([]string{"$0.125"}, DefaultDiscountThreshold, DefaultDiscountRate)
	assert.Equal(t, []float64{0.12}, r.CleanPrices)
}

func TestCleanAndDiscountEmpty(t *testing.T) {
	r := CleanAndDiscount(nil, DefaultDiscountThreshold, DefaultDiscountRate)
	assert.Zero(t, r.ValidItems())
	assert.Zero(t, r.OriginalTotal)
}

func TestTieredDiscount(t *testing.T) {
	tests := []struct {
		price   float64
		want    float64
		percent int
	}{
		{5, 5, 0},
		{10, 10, 0},
		{15, 13.5, 10},
		{25, 20, 20},
		{55, 38.5, 30},
	}
	for _, tt := range tests {
		got, pct := TieredDiscount(tt.price)
		assert.InDelta(t, tt.want, got, 1e-9, "price %v", tt.price)
		assert.Equal(t, tt.percent, pct, "price %v", tt.price)
	}
}

func TestPriceWithTax(t *testing.T) {
	p, ok := PriceWithTax("$20", DefaultDiscountThreshold, DefaultDiscountRate, DefaultTaxRate)
	require.True(t, ok)
	assert.InDelta(t, 19.44, p, 1e-9)

	_, ok = PriceWithTax("N/A", DefaultDiscountThreshold, DefaultDiscountRate, DefaultTaxRate)
	assert.False(t, ok)
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$5.00", FormatDollars(5))
	assert.Equal(t, "$1,234.50", FormatDollars(1234.5))
	assert.Equal(t, "-$3.25", FormatDollars(-3.25))
}

var (
	products = []string{"Laptop", "Mouse", "Keyboard", "Monitor"}
	stock    = []int{10, 0, 15, 5}
)

func TestBuildInventory(t *testing.T) {
	got := BuildInventory(products, stock, nil)
	want := Inventory{{"Apple Laptop", 10}, {"Keyboard", 15}, {"Monitor", 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildInventory() mismatch (-want +got):\n%s", diff)
	}

	q, ok := got.Get("Keyboard")
	assert.True(t, ok)
	assert.Equal(t, 15, q)
	_, ok = got.Get("Mouse")
	assert.False(t, ok)
}

func TestBuildInventoryUnevenLists(t *testing.T) {
	got := BuildInventory([]string{"a", "b", "c"}, []int{1, 2}, map[string]string{})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got.Map())
}

func TestBuildInventoryNameCollisions(t *testing.T) {
	got := BuildInventory(
		[]string{"Laptop", "Apple Laptop", "Mouse", "Mouse"},
		[]int{3, 5, 2, 7},
		nil,
	)
	want := Inventory{{"Apple Laptop", 5}, {"Mouse", 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildInventory() mismatch (-want +got):\n%s", diff)
	}

	q, ok := got.Get("Apple Laptop")
	require.True(t, ok)
	assert.Equal(t, got.Map()["Apple Laptop"], q)

	// An out-of-stock repeat does not replace the earlier entry.
	got = BuildInventory([]string{"Mouse", "Mouse"}, []int{4, 0}, map[string]string{})
	assert.Equal(t, Inventory{{"Mouse", 4}}, got)
}

func TestZipLongest(t *testing.T) {
	got := ZipLongest([]string{"a", "b"}, []int{1}, 0)
	assert.Equal(t, Inventory{{"a", 1}, {"b", 0}}, got)

	got = ZipLongest([]string{"a"}, []int{1, 2}, -1)
	assert.Equal(t, Inventory{{"a", 1}, {"", 2}}, got)
}

func TestStockLevel(t *testing.T) {
	assert.Equal(t, LevelOutOfStock, StockLevel(0))
	assert.Equal(t, LevelLow, StockLevel(4))
	assert.Equal(t, LevelMedium, StockLevel(5))
	assert.Equal(t, LevelMedium, StockLevel(9))
	assert.Equal(t, LevelHigh, StockLevel(10))
}

func TestGroupByStockLevel(t *testing.T) {
	groups := GroupByStockLevel(products, stock)
	require.Len(t, groups, 3)

	assert.Equal(t, LevelHigh, groups[0].Level)
	assert.Equal(t, Inventory{{"Laptop", 10}, {"Keyboard", 15}}, groups[0].Items)
	assert.Equal(t, LevelMedium, groups[1].Level)
	assert.Equal(t, LevelOutOfStock, groups[2].Level)
	assert.Empty(t, groups[2].Items)
}

func TestSortedByQuantity(t *testing.T) {
	inv := BuildInventory(products, stock, nil)
	sorted := SortedByQuantity(inv)
	assert.Equal(t, "Keyboard", sorted[0].Name)
	assert.Equal(t, "Apple Laptop", inv[0].Name)
}

func TestInventoryReport(t *testing.T) {
	prices := []float64{999.99, 29.99, 79.99, 299.99}
	brands := map[string]string{"Laptop": "Apple MacBook Pro", "Monitor": `Dell UltraSharp 27"`}

	r := InventoryReport(products, stock, prices, brands)
	require.Len(t, r.Items, 3)
	assert.Equal(t, "Apple MacBook Pro", r.Items[0].Name)
	assert.Equal(t, "Good", r.Items[0].Status)
	assert.Equal(t, "Keyboard", r.Items[1].Name)
	assert.Equal(t, "Low", r.Items[2].Status)

	assert.Equal(t, 3, r.Stats.TotalProducts)
	assert.Equal(t, 30, r.Stats.TotalItems)
	assert.InDelta(t, 12699.70, r.Stats.TotalValue, 0.001)
	assert.Equal(t, 1, r.Stats.LowStockItems)
}

func TestInventoryReportNameCollisions(t *testing.T) {
	r := InventoryReport([]string{"Mouse", "Mouse"}, []int{2, 7}, []float64{10, 12}, nil)
	require.Len(t, r.Items, 1)
	assert.Equal(t, ReportItem{Name: "Mouse", Quantity: 7, Price: 12, Value: 84, Status: "Low"}, r.Items[0])
	assert.Equal(t, ReportStats{TotalProducts: 1, TotalItems: 7, TotalValue: 84, LowStockItems: 1}, r.Stats)
}

func TestItemStatus(t *testing.T) {
	assert.Equal(t, "Critical", ItemStatus(2))
	assert.Equal(t, "Low", ItemStatus(3))
	assert.Equal(t, "Good", ItemStatus(10))
}

func TestFlattenDepartments(t *testing.T) {
	depts := [][]string{{"Alice", "Bob"}, {"Charlie", "David", "Eve"}, {"Frank"}}
	assert.Equal(t, []string{"ALICE", "CHARLIE", "DAVID", "FRANK"}, FlattenDepartments(depts, 4))
	assert.Len(t, FlattenDepartments(depts, 0), 6)
	assert.Nil(t, FlattenDepartments(nil, 0))
}

func TestFlattenNested(t *testing.T) {
	in := []any{"a", []string{"b", "c"}, []any{"d", []any{"e", nil}}, 3}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "3"}, FlattenNested(in))
}
