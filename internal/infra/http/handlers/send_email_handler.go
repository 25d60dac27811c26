package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
	"github.com/xavierca1/leadmail/internal/usecase"
)

type EmailDispatcher interface {
	Execute(ctx context.Context, input usecase.SendEmailInput) (*usecase.SendEmailOutput, error)
}

type SendEmailHandler struct {
	SendEmailUC EmailDispatcher
}

func NewSendEmailHandler(uc EmailDispatcher) *SendEmailHandler {
	return &SendEmailHandler{SendEmailUC: uc}
}

func (h *SendEmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, middleware.ErrInvalidToken.Error())
		return
	}

	var input usecase.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	input.UserID = userID

	output, err := h.SendEmailUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeRateLimited {
			middleware.RecordEmailSend("rate_limited")
		} else {
			middleware.RecordEmailSend("failed")
		}
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordEmailSend("sent")
	writeJSON(w, http.StatusOK, output)
}
