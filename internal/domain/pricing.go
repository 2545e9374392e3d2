package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeCity trims, collapses inner whitespace and lowercases a city name.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

// PriceTable is an immutable snapshot of ticket prices keyed by normalized city name.
type PriceTable struct {
	currency string
	prices   map[string]int
}

// NewPriceTable builds a PriceTable from raw city names and whole-unit prices.
func NewPriceTable(currency string, prices map[string]int) (PriceTable, error) {
	if len(prices) == 0 {
		return PriceTable{}, NewValidationErr("price table must contain at least one city")
	}

	normalized := make(map[string]int, len(prices))
	for city, price := range prices {
		key := NormalizeCity(city)
		if key == "" {
			return PriceTable{}, NewValidationErr("price table contains an empty city name")
		}
		if price <= 0 {
			return PriceTable{}, NewValidationErr(fmt.Sprintf("price for %q must be positive", city))
		}
		if _, dup := normalized[key]; dup {
			return PriceTable{}, NewValidationErr(fmt.Sprintf("city %q is listed more than once", key))
		}
		normalized[key] = price
	}

	return PriceTable{
		currency: strings.ToUpper(strings.TrimSpace(currency)),
		prices:   normalized,
	}, nil
}

// Lookup returns the price for the given city. The name is normalized first.
func (t PriceTable) Lookup(city string) (int, bool) {
	price, ok := t.prices[NormalizeCity(city)]
	return price, ok
}

// Currency returns the table currency code.
func (t PriceTable) Currency() string {
	return t.currency
}

// Cities returns the normalized city names in alphabetical order.
func (t PriceTable) Cities() []string {
	cities := make([]string, 0, len(t.prices))
	for c := range t.prices {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

// Len returns the number of cities.
func (t PriceTable) Len() int {
	return len(t.prices)
}

// DiscountRule is a fixed percentage markdown.
type DiscountRule struct {
	Percent int
}

// NewDiscountRule validates the percentage is within [1, 99].
func NewDiscountRule(percent int) (DiscountRule, error) {
	if percent < 1 || percent > 99 {
		return DiscountRule{}, NewValidationErr(fmt.Sprintf("discount percent must be between 1 and 99, got %d", percent))
	}
	return DiscountRule{Percent: percent}, nil
}

// Apply returns the discounted price using integer floor arithmetic.
// For positive prices the result is always strictly below the base price.
func (r DiscountRule) Apply(price int) int {
	return price * (100 - r.Percent) / 100
}
