package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"veriwork/internal/extract"
	"veriwork/internal/llm"
)

// formInput builds an extract.Input from the named multipart fields.
// Returns a zero Input when neither field is present; the pipeline
// rejects that case itself.
func formInput(r *http.Request, fileField, cameraField string) extract.Input {
	in := extract.Input{CameraData: strings.TrimSpace(r.FormValue(cameraField))}
	file, header, err := r.FormFile(fileField)
	if err != nil {
		return in
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return in
	}
	in.FileBytes = content
	in.Filename = header.Filename
	return in
}

// UploadPersonal processes a personal identity document upload.
// POST /form/personal/upload, multipart with worker_id and either
// document_file or camera_data.
func (h *Handler) UploadPersonal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload())
	if err := r.ParseMultipartForm(h.maxUpload()); err != nil {
		respond(w, http.StatusBadRequest, "failed to parse form or file too large", "INVALID_FORM", nil)
		return
	}

	workerID := strings.TrimSpace(r.FormValue("worker_id"))
	in := formInput(r, "document_file", "camera_data")

	result, err := h.Extractor.ProcessPersonal(r.Context(), workerID, in)
	if err != nil {
		log.Printf("personal upload failed for worker %s: %v", workerID, err)
		respondExtractError(w, err)
		return
	}

	respond(w, http.StatusOK, "Personal document processed successfully", "", map[string]any{
		"worker_id":      workerID,
		"file_path":      result.FilePath,
		"extracted_data": result.Personal,
	})
}

// UploadEducational processes 10th and/or 12th marksheet uploads in a
// single request. Class levels are independent: one failing does not
// abort the other, and the request only fails outright when every
// requested class level failed.
// POST /form/educational/upload
func (h *Handler) UploadEducational(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*h.maxUpload())
	if err := r.ParseMultipartForm(2 * h.maxUpload()); err != nil {
		respond(w, http.StatusBadRequest, "failed to parse form or file too large", "INVALID_FORM", nil)
		return
	}

	workerID := strings.TrimSpace(r.FormValue("worker_id"))

	type classUpload struct {
		level string
		in    extract.Input
	}
	var requested []classUpload
	for _, c := range []struct{ level, fileField, cameraField string }{
		{llm.Class10th, "file_10th", "camera_data_10th"},
		{llm.Class12th, "file_12th", "camera_data_12th"},
	} {
		in := formInput(r, c.fileField, c.cameraField)
		if len(in.FileBytes) > 0 || in.CameraData != "" {
			requested = append(requested, classUpload{level: c.level, in: in})
		}
	}
	if len(requested) == 0 {
		respond(w, http.StatusBadRequest, "At least one document (10th or 12th) is required", "MISSING_DOCUMENTS", nil)
		return
	}

	var documents []map[string]any
	var failures []map[string]any
	for _, req := range requested {
		result, err := h.Extractor.ProcessEducational(r.Context(), workerID, req.level, req.in)
		if err != nil {
			log.Printf("educational upload failed for worker %s class %s: %v", workerID, req.level, err)
			failures = append(failures, map[string]any{
				"class":      req.level,
				"error_code": extractCode(err),
			})
			continue
		}
		documents = append(documents, map[string]any{
			"class": req.level,
			"data":  result.Education,
		})
	}

	if len(documents) == 0 {
		code := "ALL_PROCESSING_FAILED"
		if len(requested) == 1 {
			code = strings.ToUpper(requested[0].level) + "_PROCESSING_FAILED"
		}
		respond(w, http.StatusBadRequest, "No documents were successfully processed", code, map[string]any{
			"worker_id": workerID,
			"failures":  failures,
		})
		return
	}

	data := map[string]any{
		"worker_id": workerID,
		"documents": documents,
	}
	if len(failures) > 0 {
		data["failures"] = failures
	}
	respond(w, http.StatusOK, "Educational documents processed successfully", "", data)
}

func extractCode(err error) string {
	if ee, ok := err.(*extract.Error); ok {
		return ee.Code
	}
	return "INTERNAL_ERROR"
}
