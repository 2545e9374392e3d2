package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const introspectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
	Tools []domain.ToolDescriptor
}

// Introspect renders the dependency graph of the running application together
// with the tools the assistant can call.
func (api FareAssistServer) Introspect(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](introspectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title: "FareAssist Introspection Graph",
		Graph: mermaidGraph,
	}
	if api.ListToolsUseCase != nil {
		page.Tools = api.ListToolsUseCase.Query(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
