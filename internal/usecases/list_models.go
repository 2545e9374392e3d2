package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ModelSummary describes a chat model served by the backend.
type ModelSummary struct {
	Name    string
	OwnedBy string
	// Active is true for the model the chat turns are configured to use.
	Active bool
}

// ListModels defines the use case for listing the available chat models
type ListModels interface {
	Query(ctx context.Context) ([]ModelSummary, error)
}

// ListModelsImpl implements the ListModels use case
type ListModelsImpl struct {
	assistantCatalog domain.AssistantModelCatalog
	model            string
}

// NewListModelsImpl creates a new ListModelsImpl instance
func NewListModelsImpl(assistantCatalog domain.AssistantModelCatalog, model string) ListModelsImpl {
	return ListModelsImpl{
		assistantCatalog: assistantCatalog,
		model:            model,
	}
}

// Query retrieves the models exposed by the backend and flags the configured one.
func (uc ListModelsImpl) Query(ctx context.Context) ([]ModelSummary, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := uc.assistantCatalog.ListModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	res := make([]ModelSummary, 0, len(models))
	for _, m := range models {
		res = append(res, ModelSummary{
			Name:    m.Name,
			OwnedBy: m.OwnedBy,
			Active:  m.Name == uc.model,
		})
	}
	return res, nil
}

// InitListModels is the initializer for the ListModels use case
type InitListModels struct {
	AssistantCatalog domain.AssistantModelCatalog `resolve:""`
	Model            string                       `config:"LLM_MODEL"`
}

// Initialize registers the ListModels use case in the dependency container
func (i InitListModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListModels](NewListModelsImpl(i.AssistantCatalog, i.Model))
	return ctx, nil
}
