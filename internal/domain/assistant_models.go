package domain

import "context"

// ModelInfo describes one chat model served by the model backend.
type ModelInfo struct {
	Name    string
	OwnedBy string
}

// AssistantModelCatalog lists the chat models the backend can serve.
type AssistantModelCatalog interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
