package assistant

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const defaultStatusMessage = "⏳ Processing request..."

// ToolRegistry keeps the declared tools in registration order.
type ToolRegistry struct {
	mu      sync.RWMutex
	order   []string
	actions map[string]domain.ToolAction
}

// NewToolRegistry creates a registry and registers the given tools.
// The first invalid or duplicate tool aborts the construction.
func NewToolRegistry(tools ...domain.ToolAction) (*ToolRegistry, error) {
	r := &ToolRegistry{
		actions: make(map[string]domain.ToolAction, len(tools)),
	}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool. It fails with *domain.DuplicateToolErr when the name is taken.
func (r *ToolRegistry) Register(tool domain.ToolAction) error {
	if tool == nil {
		return domain.NewValidationErr("tool cannot be nil")
	}
	descriptor := tool.Descriptor()
	if err := descriptor.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[descriptor.Name]; exists {
		return domain.NewDuplicateToolErr(descriptor.Name)
	}
	r.actions[descriptor.Name] = tool
	r.order = append(r.order, descriptor.Name)
	return nil
}

// Lookup returns the tool registered under name.
func (r *ToolRegistry) Lookup(name string) (domain.ToolAction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.actions[name]
	return tool, ok
}

// DescribeAll returns every descriptor in registration order.
func (r *ToolRegistry) DescribeAll() []domain.ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, r.actions[name].Descriptor())
	}
	return res
}

// StatusMessage returns a friendly status line for the tool.
func (r *ToolRegistry) StatusMessage(toolName string) string {
	if tool, ok := r.Lookup(toolName); ok {
		if msg := tool.StatusMessage(); msg != "" {
			return msg
		}
	}
	return defaultStatusMessage
}

// InitToolRegistry builds the pricing tools and registers the ToolRegistry.
type InitToolRegistry struct {
	PriceTable   domain.PriceTable   `resolve:""`
	DiscountRule domain.DiscountRule `resolve:""`
}

// Initialize registers the tool registry. Duplicate tool names abort startup.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry, err := NewToolRegistry(
		actions.NewTicketPriceAction(i.PriceTable),
		actions.NewDiscountedPriceAction(i.PriceTable, i.DiscountRule),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to build tool registry: %w", err)
	}

	depend.Register(registry)
	depend.Register[domain.ToolCatalog](registry)
	return ctx, nil
}
