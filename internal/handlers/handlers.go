// Package handlers is the chi HTTP surface over the extraction pipeline
// and the verification core. Responses use the
// {statusCode, responseData} envelope the worker-onboarding clients
// expect.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"veriwork/internal/extract"
	"veriwork/internal/store"
	"veriwork/internal/verify"
)

// Handler carries the injected collaborators for every endpoint.
type Handler struct {
	Store     *store.Store
	Extractor *extract.Controller

	NameThreshold  float64
	ShareSecret    []byte
	BaseURL        string
	MaxUploadBytes int64
}

func (h *Handler) threshold() float64 {
	if h.NameThreshold > 0 {
		return h.NameThreshold
	}
	return verify.DefaultNameThreshold
}

func (h *Handler) maxUpload() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return 20 << 20
}

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respond writes the standard response envelope.
func respond(w http.ResponseWriter, status int, message, errorCode string, data map[string]any) {
	body := map[string]any{"message": message}
	if errorCode != "" {
		body["error_code"] = errorCode
	}
	for k, v := range data {
		body[k] = v
	}
	writeJSONResp(w, status, map[string]any{
		"statusCode":   status,
		"responseData": body,
	})
}

// respondExtractError maps a pipeline failure onto an HTTP status and
// the envelope.
func respondExtractError(w http.ResponseWriter, err error) {
	var ee *extract.Error
	if !errors.As(err, &ee) {
		respond(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil)
		return
	}
	respond(w, statusForCode(ee.Code), ee.Message, ee.Code, nil)
}

func statusForCode(code string) int {
	switch code {
	case extract.CodeWorkerNotFound:
		return http.StatusNotFound
	case extract.CodeFileSave, extract.CodeDatabase, extract.CodeDatabaseSave:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
