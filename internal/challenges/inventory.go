package challenges

import (
	"sort"
)

// DefaultRenames is the product rename applied by BuildInventory when none is given.
var DefaultRenames = map[string]string{"Laptop": "Apple Laptop"}

// Item is one inventory line.
type Item struct {
	Name     string
	Quantity int
}

// Inventory is an ordered product → quantity table.
type Inventory []Item

// Get returns the quantity for name.
func (inv Inventory) Get(name string) (int, bool) {
	for _, it := range inv {
		if it.Name == name {
			return it.Quantity, true
		}
	}
	return 0, false
}

// set stores qty under name. A name already present keeps its position and
// takes the new quantity.
func (inv *Inventory) set(name string, qty int) {
	for i := range *inv {
		if (*inv)[i].Name == name {
			(*inv)[i].Quantity = qty
			return
		}
	}
	*inv = append(*inv, Item{Name: name, Quantity: qty})
}

// Map returns the inventory as a plain map.
func (inv Inventory) Map() map[string]int {
	out := make(map[string]int, len(inv))
	for _, it := range inv {
		out[it.Name] = it.Quantity
	}
	return out
}

// BuildInventory pairs products with stock, keeps items in stock and renames
// products found in renames. Pairing stops at the shorter list. A nil renames
// map uses DefaultRenames. When two products end up with the same name the
// later quantity wins.
func BuildInventory(products []string, stock []int, renames map[string]string) Inventory {
	if renames == nil {
		renames = DefaultRenames
	}
	n := min(len(products), len(stock))

	inv := make(Inventory, 0, n)
	for i := 0; i < n; i++ {
		if stock[i] <= 0 {
			continue
		}
		name := products[i]
		if alias, ok := renames[name]; ok {
			name = alias
		}
		inv.set(name, stock[i])
	}
	return inv
}

// ZipLongest pairs products with stock, padding the shorter side: missing
// quantities become fill, missing product names become "". Repeated names
// keep the last quantity.
func ZipLongest(products []string, stock []int, fill int) Inventory {
	n := max(len(products), len(stock))
	out := make(Inventory, 0, n)
	for i := 0; i < n; i++ {
		var name string
		qty := fill
		if i < len(products) {
			name = products[i]
		}
		if i < len(stock) {
			qty = stock[i]
		}
		out.set(name, qty)
	}
	return out
}

// Stock level names.
const (
	LevelOutOfStock = "out_of_stock"
	LevelLow        = "low"
	LevelMedium     = "medium"
	LevelHigh       = "high"
)

// StockLevel categorises a quantity.
func StockLevel(qty int) string {
	switch {
	case qty <= 0:
		return LevelOutOfStock
	case qty < 5:
		return LevelLow
	case qty < 10:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// StockGroup is the products sharing a stock level.
type StockGroup struct {
	Level string
	Items Inventory
}

// GroupByStockLevel groups products by StockLevel, levels in alphabetical
// order. Out-of-stock products produce an empty group.
func GroupByStockLevel(products []string, stock []int) []StockGroup {
	groups := make(map[string]Inventory)
	n := min(len(products), len(stock))
	for i := 0; i < n; i++ {
		level := StockLevel(stock[i])
		if _, ok := groups[level]; !ok {
			groups[level] = Inventory{}
		}
		if level != LevelOutOfStock {
			groups[level] = append(groups[level], Item{Name: products[i], Quantity: stock[i]})
		}
	}

	levels := make([]string, 0, len(groups))
	for l := range groups {
		levels = append(levels, l)
	}
	sort.Strings(levels)

	out := make([]StockGroup, 0, len(levels))
	for _, l := range levels {
		out = append(out, StockGroup{Level: l, Items: groups[l]})
	}
	return out
}

// SortedByQuantity returns a copy ordered by quantity, highest first.
func SortedByQuantity(inv Inventory) Inventory {
	out := append(Inventory(nil), inv...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}

// ReportItem is a detailed inventory line.
type ReportItem struct {
	Name     string
	Quantity int
	Price    float64
	Value    float64
	Status   string
}

// ReportStats aggregates a report.
type ReportStats struct {
	TotalProducts int
	TotalItems    int
	TotalValue    float64
	LowStockItems int
}

// Report is the result of InventoryReport.
type Report struct {
	Items []ReportItem
	Stats ReportStats
}

// ItemStatus labels a quantity for reports.
func ItemStatus(qty int) string {
	switch {
	case qty > 0 && qty < 3:
		return "Critical"
	case qty < 10:
		return "Low"
	default:
		return "Good"
	}
}

// InventoryReport builds a detailed report of in-stock products. brands maps
// product names to display names; unmapped products keep their name. A
// repeated display name replaces the earlier line in place.
func InventoryReport(products []string, stock []int, prices []float64, brands map[string]string) Report {
	n := min(len(products), len(stock), len(prices))

	var r Report
	index := make(map[string]int)
	for i := 0; i < n; i++ {
		q := stock[i]
		if q <= 0 {
			continue
		}
		name := products[i]
		if b, ok := brands[name]; ok {
			name = b
		}
		item := ReportItem{
			Name:     name,
			Quantity: q,
			Price:    prices[i],
			Value:    float64(q) * prices[i],
			Status:   ItemStatus(q),
		}
		if j, ok := index[name]; ok {
			r.Items[j] = item
			continue
		}
		index[name] = len(r.Items)
		r.Items = append(r.Items, item)
	}

	for _, item := range r.Items {
		r.Stats.TotalItems += item.Quantity
		r.Stats.TotalValue += item.Value
		if item.Status == "Low" || item.Status == "Critical" {
			r.Stats.LowStockItems++
		}
	}
	r.Stats.TotalProducts = len(r.Items)
	return r
}
