package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/usecases"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toChatResponse(result usecases.TurnResult) gen.ChatResponse {
	resp := gen.ChatResponse{
		SessionId:   result.SessionID,
		Reply:       result.Reply,
		Outcome:     gen.TurnOutcome(result.Outcome),
		ToolResults: []gen.ToolResult{},
		Usage: gen.Usage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	}
	for _, r := range result.ToolResults {
		resp.ToolResults = append(resp.ToolResults, toToolResult(r))
	}
	return resp
}

// toToolResult exposes the failure label of a tool result, never its error text.
func toToolResult(r domain.ToolResult) gen.ToolResult {
	res := gen.ToolResult{
		CallId:   r.CallID,
		ToolName: r.ToolName,
		Status:   gen.ToolResultStatus(r.Status),
	}
	if len(r.Payload) > 0 {
		payload := r.Payload
		res.Result = &payload
	}
	if r.ErrorCode != "" {
		code := gen.ToolErrorCode(r.ErrorCode)
		res.Error = &code
	}
	if r.ErrorField != "" {
		field := r.ErrorField
		res.Field = &field
	}
	return res
}

func toSessionMessage(msg domain.SessionMessage) gen.SessionMessage {
	return gen.SessionMessage{
		Id:        msg.ID,
		Role:      gen.SessionMessageRole(msg.Role),
		Content:   msg.Content,
		Notice:    msg.Notice,
		CreatedAt: msg.CreatedAt,
	}
}

func toTool(d domain.ToolDescriptor) gen.Tool {
	tool := gen.Tool{
		Name:        d.Name,
		Description: d.Description,
		Fields:      []gen.ToolField{},
		Parameters:  d.JSONSchema(),
	}
	for _, f := range d.Fields {
		tool.Fields = append(tool.Fields, gen.ToolField{
			Name:        f.Name,
			Type:        string(f.Type),
			Description: f.Description,
			Required:    f.Required,
		})
	}
	return tool
}
