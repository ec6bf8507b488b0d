package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passguard/passguard-go/internal/crypto"
	"github.com/passguard/passguard-go/internal/model"
	"github.com/passguard/passguard-go/internal/service"
)

// StrengthHandler handles HTTP requests for password assessment and
// generation.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *StrengthHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(req))
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *StrengthHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPolicy) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeBody decodes the request body into v, writing an error response and
// returning false on failure. Bodies are capped at 1MB.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty body means defaults.
			return true
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
