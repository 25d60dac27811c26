package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadmail/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeUsecaseError maps the usecase error taxonomy to a status and returns
// the message verbatim.
func writeUsecaseError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch usecase.ErrorCode(err) {
	case usecase.CodeValidation,
		usecase.CodeConfig,
		usecase.CodeUnsupportedProvider,
		usecase.CodeUpstream:
		return http.StatusBadRequest
	case usecase.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
