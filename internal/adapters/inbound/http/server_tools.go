package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http/gen"
)

// List the tools the assistant can call
// (GET /api/v1/tools)
func (api FareAssistServer) ListTools(w http.ResponseWriter, r *http.Request) {
	resp := gen.ToolListResp{Tools: []gen.Tool{}}
	for _, d := range api.ListToolsUseCase.Query(r.Context()) {
		resp.Tools = append(resp.Tools, toTool(d))
	}
	respondJSON(w, http.StatusOK, resp)
}

// List the chat models served by the backend
// (GET /api/v1/models)
func (api FareAssistServer) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := api.ListModelsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}
	resp := gen.ModelListResp{Models: []gen.Model{}}
	for _, m := range models {
		resp.Models = append(resp.Models, gen.Model{Name: m.Name, OwnedBy: m.OwnedBy, Active: m.Active})
	}
	respondJSON(w, http.StatusOK, resp)
}

// Report the server is up
// (GET /healthz)
func (api FareAssistServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{Status: "ok"})
}
