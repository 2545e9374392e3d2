package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
)

// NewTicketPriceAction creates a new instance of TicketPriceAction.
func NewTicketPriceAction(prices domain.PriceTable) TicketPriceAction {
	return TicketPriceAction{prices: prices}
}

// TicketPriceAction looks up the return ticket price for a destination.
type TicketPriceAction struct {
	prices domain.PriceTable
}

// StatusMessage returns a status message about the action execution.
func (a TicketPriceAction) StatusMessage() string {
	return "🔎 Looking up ticket price..."
}

// Descriptor returns the tool descriptor for get_ticket_price.
func (a TicketPriceAction) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name: "get_ticket_price",
		Description: "Get the price of a return ticket to the destination city. " +
			"Call this whenever you need to know the ticket price, for example when a customer asks 'How much is a ticket to this city'. " +
			"Never guess a price: if the result is not_found, tell the customer we have no fare for that city.",
		Fields: []domain.ToolField{destinationCity()},
	}
}

// Execute returns {city, price, currency} or a not_found result.
func (a TicketPriceAction) Execute(_ context.Context, args map[string]any) (domain.ToolOutput, error) {
	var params cityParams
	if err := decodeActionInput(args, &params); err != nil {
		return domain.ToolOutput{}, err
	}

	city := domain.NormalizeCity(params.DestinationCity)
	price, ok := a.prices.Lookup(city)
	if !ok {
		return notFound(city), nil
	}

	return domain.ToolFound(map[string]any{
		"city":     city,
		"price":    price,
		"currency": a.prices.Currency(),
	}), nil
}
