package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"veriwork/internal/handlers"
	"veriwork/internal/middleware"
)

func RegisterRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// Worker onboarding form
	r.Post("/form/worker", h.CreateWorker)
	r.Get("/form/worker/{workerID}", h.GetWorker)
	r.Post("/form/personal/upload", h.UploadPersonal)
	r.Post("/form/educational/upload", h.UploadEducational)
	r.Get("/form/worker/{workerID}/verify", h.VerifyWorker)

	// Direct verification against caller-supplied fields
	r.Post("/api/v1/verify/direct", h.VerifyDirect)

	// Share links and QR codes for verification status
	r.Post("/api/v1/workers/generate-share-link", h.GenerateShareLink)
	r.Get("/api/v1/workers/shared/{token}", h.SharedVerification)
	r.Get("/worker/{workerID}/qrcode", h.WorkerQRCode)

	return r
}
