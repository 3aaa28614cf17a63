package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultShareExpiryHours = 24
	maxShareExpiryHours     = 168
)

type shareClaims struct {
	WorkerID string `json:"worker_id"`
	jwt.RegisteredClaims
}

type generateShareLinkReq struct {
	WorkerID       string `json:"worker_id"`
	ExpiresInHours int    `json:"expires_in_hours"`
}

// GenerateShareLink issues a signed, expiring URL exposing a worker's
// verification status to whoever holds the link.
//
// POST /api/v1/workers/generate-share-link
func (h *Handler) GenerateShareLink(w http.ResponseWriter, r *http.Request) {
	var req generateShareLinkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", nil)
		return
	}
	req.WorkerID = strings.TrimSpace(req.WorkerID)
	if req.WorkerID == "" {
		respond(w, http.StatusBadRequest, "worker_id is required", "MISSING_WORKER_ID", nil)
		return
	}
	if len(h.ShareSecret) == 0 {
		respond(w, http.StatusInternalServerError, "Share links are not configured", "SHARE_NOT_CONFIGURED", nil)
		return
	}

	worker, err := h.Store.GetWorker(req.WorkerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "Database error", "DATABASE_ERROR", nil)
		return
	}
	if worker == nil {
		respond(w, http.StatusNotFound, "Worker not found", "WORKER_NOT_FOUND", nil)
		return
	}

	hours := req.ExpiresInHours
	if hours <= 0 {
		hours = defaultShareExpiryHours
	}
	if hours > maxShareExpiryHours {
		respond(w, http.StatusBadRequest,
			fmt.Sprintf("expires_in_hours must be at most %d", maxShareExpiryHours),
			"INVALID_EXPIRY", nil)
		return
	}

	exp := time.Now().Add(time.Duration(hours) * time.Hour)
	claims := shareClaims{
		WorkerID: worker.WorkerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.ShareSecret)
	if err != nil {
		respond(w, http.StatusInternalServerError, "Failed to sign share token", "TOKEN_SIGNING_FAILED", nil)
		return
	}

	respond(w, http.StatusOK, "Share link generated", "", map[string]any{
		"share_url":  fmt.Sprintf("%s/api/v1/workers/shared/%s", strings.TrimRight(h.BaseURL, "/"), signed),
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

// SharedVerification resolves a share token to the worker's current
// verification status. Expired and malformed tokens are rejected alike.
//
// GET /api/v1/workers/shared/{token}
func (h *Handler) SharedVerification(w http.ResponseWriter, r *http.Request) {
	tokenStr := chi.URLParam(r, "token")
	if tokenStr == "" {
		respond(w, http.StatusBadRequest, "Missing share token", "MISSING_TOKEN", nil)
		return
	}

	claims := &shareClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.ShareSecret), nil
	})
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			respond(w, http.StatusUnauthorized, "This share link has expired", "TOKEN_EXPIRED", nil)
			return
		}
		respond(w, http.StatusUnauthorized, "This share link is invalid or has expired", "INVALID_TOKEN", nil)
		return
	}
	if claims.WorkerID == "" {
		respond(w, http.StatusUnauthorized, "This share link is invalid or has expired", "INVALID_TOKEN", nil)
		return
	}

	worker, err := h.Store.GetWorker(claims.WorkerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "Database error", "DATABASE_ERROR", nil)
		return
	}
	if worker == nil {
		respond(w, http.StatusNotFound, "Worker not found", "WORKER_NOT_FOUND", nil)
		return
	}

	var verificationErrors any
	if worker.VerificationErrors != "" {
		if err := json.Unmarshal([]byte(worker.VerificationErrors), &verificationErrors); err != nil {
			verificationErrors = worker.VerificationErrors
		}
	}

	respond(w, http.StatusOK, "Shared verification status", "", map[string]any{
		"worker_id":           worker.WorkerID,
		"name":                worker.Name,
		"verification_status": worker.VerificationStatus,
		"verification_errors": verificationErrors,
		"valid_until":         claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
	})
}
