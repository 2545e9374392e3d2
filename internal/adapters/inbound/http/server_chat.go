package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/usecases"
)

// Run one conversation turn
// (POST /api/v1/chat)
func (api FareAssistServer) Chat(w http.ResponseWriter, r *http.Request) {
	var req gen.ChatJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	opts := []usecases.ChatTurnOption{}
	if req.SessionId != nil {
		opts = append(opts, usecases.WithSessionID(*req.SessionId))
	}

	result, err := api.ChatTurnUseCase.Execute(r.Context(), req.Message, opts...)
	if err != nil {
		api.Logger.Printf("FareAssistServer: chat turn failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResponse(result))
}
