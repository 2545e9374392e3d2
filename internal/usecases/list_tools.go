package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTools defines the interface for the ListTools use case
type ListTools interface {
	Query(ctx context.Context) []domain.ToolDescriptor
}

// ListToolsImpl is the implementation of the ListTools use case
type ListToolsImpl struct {
	catalog domain.ToolCatalog
}

// NewListToolsImpl creates a new instance of ListToolsImpl
func NewListToolsImpl(catalog domain.ToolCatalog) ListToolsImpl {
	return ListToolsImpl{catalog: catalog}
}

// Query returns the registered tool descriptors in registration order.
func (lt ListToolsImpl) Query(ctx context.Context) []domain.ToolDescriptor {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return lt.catalog.DescribeAll()
}

// InitListTools is the initializer for the ListTools use case
type InitListTools struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the ListTools use case in the dependency container
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.Catalog))
	return ctx, nil
}
