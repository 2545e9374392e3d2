package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http/gen"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// List the visible messages of a session
// (GET /api/v1/sessions/{session_id}/messages)
func (api FareAssistServer) ListSessionMessages(w http.ResponseWriter, r *http.Request, sessionId openapi_types.UUID) {
	messages, err := api.ListSessionMessagesUseCase.Query(r.Context(), sessionId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.SessionMessagesResp{
		SessionId: sessionId,
		Messages:  make([]gen.SessionMessage, len(messages)),
	}
	for i, msg := range messages {
		resp.Messages[i] = toSessionMessage(msg)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Delete a session
// (DELETE /api/v1/sessions/{session_id})
func (api FareAssistServer) DeleteSession(w http.ResponseWriter, r *http.Request, sessionId openapi_types.UUID) {
	err := api.DeleteSessionUseCase.Execute(r.Context(), sessionId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
