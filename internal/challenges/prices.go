package challenges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"practicejournal/internal/logging"
)

// ErrInvalidPrice is returned when a price string is not a number.
var ErrInvalidPrice = errors.New("invalid price")

const (
	DefaultDiscountThreshold = 10.0
	DefaultDiscountRate      = 0.1
	DefaultTaxRate           = 0.08
)

var dollarPrinter = message.NewPrinter(language.English)

// ParsePrice strips dollar signs and whitespace and parses the rest as a
// decimal number. Hex floats are rejected and single underscores between
// digits are allowed ("1_000").
func ParsePrice(s string) (float64, error) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, "$", ""))
	digits, ok := stripDigitSeparators(clean)
	if !ok || isHexLiteral(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return v, nil
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// stripDigitSeparators removes underscores that sit between two digits. Any
// other underscore makes the input invalid.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

// CleanPrice parses s and takes 10% off prices over $10.
// It reports false when s is not a price.
func CleanPrice(s string) (float64, bool) {
	p, err := ParsePrice(s)
	if err != nil {
		return 0, false
	}
	if p > DefaultDiscountThreshold {
		return p * (1 - DefaultDiscountRate), true
	}
	return p, true
}

// PriceReport is the result of CleanAndDiscount.
type PriceReport struct {
	CleanPrices     []float64
	SkippedItems    []string
	OriginalTotal   float64
	DiscountedTotal float64
	TotalSavings    float64
	DiscountsCount  int
}

// ValidItems is the number of prices that parsed.
func (r PriceReport) ValidItems() int { return len(r.CleanPrices) }

// InvalidItems is the number of entries skipped.
func (r PriceReport) InvalidItems() int { return len(r.SkippedItems) }

// CleanAndDiscount parses every price, discounting those strictly above
// threshold by rate. Unparseable entries are collected in SkippedItems.
func CleanAndDiscount(prices []string, threshold, rate float64) PriceReport {
	var r PriceReport
	var original, discounted float64

	for _, s := range prices {
		p, err := ParsePrice(s)
		if err != nil {
			logging.ChallengesDebug("Skipping price %q: %v", s, err)
			r.SkippedItems = append(r.SkippedItems, s)
			continue
		}
		original += p
		if p > threshold {
			p *= 1 - rate
			r.DiscountsCount++
		}
		r.CleanPrices = append(r.CleanPrices, Round(p, 2))
		discounted += p
	}

	r.OriginalTotal = Round(original, 2)
	r.DiscountedTotal = Round(discounted, 2)
	r.TotalSavings = Round(original-discounted, 2)
	return r
}

// TieredDiscount applies 30% off at $50+, 20% at $20+, 10% above $10.
// It returns the discounted price and the percentage applied.
func TieredDiscount(price float64) (float64, int) {
	switch {
	case price >= 50:
		return price * 0.7, 30
	case price >= 20:
		return price * 0.8, 20
	case price > 10:
		return price * 0.9, 10
	default:
		return price, 0
	}
}

// PriceWithTax discounts s like CleanAndDiscount and then adds tax.
func PriceWithTax(s string, threshold, rate, tax float64) (float64, bool) {
	p, err := ParsePrice(s)
	if err != nil {
		return 0, false
	}
	if p > threshold {
		p *= 1 - rate
	}
	return Round(p*(1+tax), 2), true
}

// FormatDollars renders a price as $1,234.56.
func FormatDollars(v float64) string {
	if v < 0 {
		return "-$" + dollarPrinter.Sprintf("%.2f", -v)
	}
	return "$" + dollarPrinter.Sprintf("%.2f", v)
}
