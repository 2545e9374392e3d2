package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
)

// NewDiscountedPriceAction creates a new instance of DiscountedPriceAction.
func NewDiscountedPriceAction(prices domain.PriceTable, rule domain.DiscountRule) DiscountedPriceAction {
	return DiscountedPriceAction{
		prices: prices,
		rule:   rule,
	}
}

// DiscountedPriceAction returns the sale price for a destination.
type DiscountedPriceAction struct {
	prices domain.PriceTable
	rule   domain.DiscountRule
}

// StatusMessage returns a status message about the action execution.
func (a DiscountedPriceAction) StatusMessage() string {
	return "🏷️ Checking sale price..."
}

// Descriptor returns the tool descriptor for get_discounted_price.
func (a DiscountedPriceAction) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name: "get_discounted_price",
		Description: "Get the discounted (sale) price of a return ticket to the destination city. " +
			"Call this when a customer asks about a sale, a discount or a deal for a city. " +
			"Quote the returned price exactly.",
		Fields: []domain.ToolField{destinationCity()},
	}
}

// Execute returns {city, base_price, discount_percent, price, currency} or a not_found result.
func (a DiscountedPriceAction) Execute(_ context.Context, args map[string]any) (domain.ToolOutput, error) {
	var params cityParams
	if err := decodeActionInput(args, &params); err != nil {
		return domain.ToolOutput{}, err
	}

	city := domain.NormalizeCity(params.DestinationCity)
	base, ok := a.prices.Lookup(city)
	if !ok {
		return notFound(city), nil
	}

	return domain.ToolFound(map[string]any{
		"city":             city,
		"base_price":       base,
		"discount_percent": a.rule.Percent,
		"price":            a.rule.Apply(base),
		"currency":         a.prices.Currency(),
	}), nil
}
