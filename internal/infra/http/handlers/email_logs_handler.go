package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xavierca1/leadmail/internal/infra/http/middleware"
	"github.com/xavierca1/leadmail/internal/usecase"
)

type EmailLogLister interface {
	Execute(ctx context.Context, input usecase.ListEmailLogsInput) (*usecase.ListEmailLogsOutput, error)
}

type EmailLogsHandler struct {
	ListUC EmailLogLister
}

func NewEmailLogsHandler(uc EmailLogLister) *EmailLogsHandler {
	return &EmailLogsHandler{ListUC: uc}
}

// Handle (GET /email-logs?limit=N)
func (h *EmailLogsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, middleware.ErrInvalidToken.Error())
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	output, err := h.ListUC.Execute(r.Context(), usecase.ListEmailLogsInput{UserID: userID, Limit: limit})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
