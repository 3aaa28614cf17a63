package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"veriwork/internal/llm"
	"veriwork/internal/models"
	"veriwork/internal/verify"
)

// VerifyWorker runs all pairwise comparisons across the worker's
// persisted documents, records the verdict and per-comparison logs, and
// reports the outcome.
// GET /form/worker/{workerID}/verify
func (h *Handler) VerifyWorker(w http.ResponseWriter, r *http.Request) {
	workerID := strings.TrimSpace(chi.URLParam(r, "workerID"))
	if workerID == "" {
		respond(w, http.StatusBadRequest, "worker_id is required", "MISSING_WORKER_ID", nil)
		return
	}

	worker, err := h.Store.GetWorker(workerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "database error", "DATABASE_ERROR", nil)
		return
	}
	if worker == nil {
		respond(w, http.StatusNotFound, "Worker not found", "WORKER_NOT_FOUND", nil)
		return
	}

	edu10th, err := h.Store.GetEducation(workerID, llm.Class10th)
	if err != nil {
		respond(w, http.StatusInternalServerError, "database error", "DATABASE_ERROR", nil)
		return
	}
	edu12th, err := h.Store.GetEducation(workerID, llm.Class12th)
	if err != nil {
		respond(w, http.StatusInternalServerError, "database error", "DATABASE_ERROR", nil)
		return
	}

	personal := &verify.Document{Name: worker.Name, DateOfBirth: worker.DOB}
	result := verify.VerifyWorkerDocuments(personal, educationDocument(edu10th), educationDocument(edu12th), h.threshold())

	summary := verify.ExtractVerificationErrors(result)
	var summaryValue any
	if summary != nil {
		summaryValue = summary
	}
	if err := h.Store.UpdateVerificationStatus(workerID, result.OverallStatus, summaryValue); err != nil {
		log.Printf("failed to persist verification status for %s: %v", workerID, err)
	}
	for _, comp := range result.Comparisons {
		if err := h.Store.AppendVerificationLog(workerID, comp.Type, comp.Details, comp.Status); err != nil {
			log.Printf("failed to log %s comparison for %s: %v", comp.Type, workerID, err)
		}
	}

	switch result.OverallStatus {
	case verify.StatusVerified:
		respond(w, http.StatusOK, "All documents verified successfully", "", map[string]any{
			"verification_status": result.OverallStatus,
			"comparisons":         result.Comparisons,
		})
	case verify.StatusFailed:
		var issues [][]string
		for _, comp := range result.Comparisons {
			if comp.Status == verify.StatusFailed {
				issues = append(issues, comp.Details.Issues)
			}
		}
		respond(w, http.StatusBadRequest, "Document verification failed - see details", "VERIFICATION_FAILED", map[string]any{
			"verification_status": result.OverallStatus,
			"errors":              issues,
			"comparisons":         result.Comparisons,
		})
	default:
		respond(w, http.StatusPartialContent, "Incomplete verification - missing documents", "INCOMPLETE_DATA", map[string]any{
			"verification_status": result.OverallStatus,
			"errors":              result.Errors,
		})
	}
}

// educationDocument lifts a persisted marksheet into the comparison
// shape. Marksheet extraction carries no name or DOB of its own, so
// comparisons against it skip those fields rather than fail.
func educationDocument(doc *models.EducationalDocument) *verify.Document {
	if doc == nil {
		return nil
	}
	return &verify.Document{}
}

type directVerifyRequest struct {
	WorkerID    string `json:"worker_id"`
	Educational *struct {
		Name string `json:"name"`
		DOB  string `json:"dob"`
	} `json:"educational"`
}

// VerifyDirect runs the lenient personal-vs-education check against
// caller-supplied educational fields.
// POST /api/v1/verify/direct
func (h *Handler) VerifyDirect(w http.ResponseWriter, r *http.Request) {
	var req directVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "invalid JSON body", "INVALID_BODY", nil)
		return
	}
	if strings.TrimSpace(req.WorkerID) == "" {
		respond(w, http.StatusBadRequest, "worker_id is required", "MISSING_WORKER_ID", nil)
		return
	}

	worker, err := h.Store.GetWorker(req.WorkerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "database error", "DATABASE_ERROR", nil)
		return
	}

	var personal *verify.Document
	if worker != nil {
		personal = &verify.Document{Name: worker.Name, DateOfBirth: worker.DOB}
	}
	var educational *verify.Document
	if req.Educational != nil {
		educational = &verify.Document{Name: req.Educational.Name, DateOfBirth: req.Educational.DOB}
	}

	result := verify.VerifyPersonalVsEducation(personal, educational)
	respond(w, http.StatusOK, "Direct verification completed", "", map[string]any{
		"worker_id": req.WorkerID,
		"result":    result,
	})
}
