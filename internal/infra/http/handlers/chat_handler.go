package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
	"github.com/xavierca1/leadmail/internal/usecase"
)

type ChatCompleter interface {
	Execute(ctx context.Context, input usecase.ChatCompletionInput) (*usecase.ChatCompletionOutput, error)
}

type ChatHandler struct {
	ChatUC ChatCompleter
}

func NewChatHandler(uc ChatCompleter) *ChatHandler {
	return &ChatHandler{ChatUC: uc}
}

func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatCompletionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	output, err := h.ChatUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordLLMRequest(providerLabel(input.Provider), "error")
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordLLMRequest(providerLabel(input.Provider), "ok")
	writeJSON(w, http.StatusOK, output)
}

// providerLabel keeps the metric label set closed.
func providerLabel(provider string) string {
	p := strings.ToLower(strings.TrimSpace(provider))
	if p == usecase.ProviderOpenAI || p == usecase.ProviderClaude {
		return p
	}
	return "unknown"
}
