package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadmail/internal/usecase"
)

type SmtpTester interface {
	Execute(ctx context.Context, input usecase.TestSmtpInput) (*usecase.TestSmtpOutput, error)
}

type TestSmtpHandler struct {
	TestSmtpUC SmtpTester
}

func NewTestSmtpHandler(uc SmtpTester) *TestSmtpHandler {
	return &TestSmtpHandler{TestSmtpUC: uc}
}

func (h *TestSmtpHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.TestSmtpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	output, err := h.TestSmtpUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
