package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// WorkerQRCode renders a QR code PNG pointing at the worker's verification
// endpoint, suitable for printing on an ID card.
//
// GET /worker/{workerID}/qrcode
func (h *Handler) WorkerQRCode(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		respond(w, http.StatusBadRequest, "Missing worker ID", "MISSING_WORKER_ID", nil)
		return
	}

	worker, err := h.Store.GetWorker(workerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "Database error", "DATABASE_ERROR", nil)
		return
	}
	if worker == nil {
		respond(w, http.StatusNotFound, "Worker not found", "WORKER_NOT_FOUND", nil)
		return
	}

	url := fmt.Sprintf("%s/form/worker/%s/verify", strings.TrimRight(h.BaseURL, "/"), workerID)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		respond(w, http.StatusInternalServerError, "Failed to generate QR code", "QRCODE_FAILED", nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
