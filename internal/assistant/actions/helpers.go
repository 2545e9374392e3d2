package actions

import (
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/mitchellh/mapstructure"
)

const fieldDestinationCity = "destination_city"

// destinationCity is the argument shared by the pricing tools.
func destinationCity() domain.ToolField {
	return domain.ToolField{
		Name:        fieldDestinationCity,
		Type:        domain.ToolFieldType_String,
		Description: "The city that the customer wants to travel to, for example London.",
		Required:    true,
		CaseFold:    true,
	}
}

// cityParams is the decoded input of the pricing tools.
type cityParams struct {
	DestinationCity string `mapstructure:"destination_city"`
}

// decodeActionInput decodes validated arguments into the target struct.
// Keys the target does not declare are rejected.
func decodeActionInput(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "mapstructure",
		Result:      target,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return domain.NewSchemaValidationErr("", err.Error())
	}
	return nil
}

// notFound is the payload returned when the destination has no fare.
func notFound(city string) domain.ToolOutput {
	return domain.ToolNotFound(map[string]any{
		"city":   city,
		"reason": "no fare is listed for this destination",
	})
}
