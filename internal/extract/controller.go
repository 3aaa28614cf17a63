// Package extract drives the per-document pipeline: resolve and save the
// upload, obtain raw text from the OCR collaborator, request structured
// extraction from the LLM collaborator, validate the shape, and persist.
// Every stage fails fast with a typed error, and every failed attempt
// still leaves an audited extraction record.
package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"veriwork/internal/llm"
	"veriwork/internal/models"
)

// DefaultMinTextLength is the minimum trimmed OCR output length, in
// characters rather than bytes, treated as a usable extraction.
const DefaultMinTextLength = 50

// Audit statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Controller owns the extraction pipeline. All collaborators are
// injected; the controller never constructs clients or reads
// credentials.
type Controller struct {
	OCR   OCREngine
	LLM   LLMClient
	Store Store
	Cache Cache

	PersonalDir    string
	EducationalDir string
	MinTextLength  int
}

// Result is the successful outcome of one document's pipeline run.
type Result struct {
	FilePath  string
	RawText   string
	Personal  *models.PersonalData
	Education *models.EducationData
}

func (c *Controller) minText() int {
	if c.MinTextLength > 0 {
		return c.MinTextLength
	}
	return DefaultMinTextLength
}

// ProcessPersonal runs the full pipeline for a personal identity
// document and updates the worker's primary record on success.
func (c *Controller) ProcessPersonal(ctx context.Context, workerID string, in Input) (*Result, error) {
	if err := c.checkWorker(workerID); err != nil {
		return nil, err
	}

	filePath, perr := c.saveInput(workerID, llm.ClassPersonal, c.PersonalDir, in)
	if perr != nil {
		return nil, perr
	}

	rawText, oerr := c.runOCR(ctx, workerID, llm.ClassPersonal, filePath)
	if oerr != nil {
		return nil, oerr
	}

	structured, serr := c.extractStructured(ctx, llm.ClassPersonal, rawText)
	if serr != nil {
		_ = c.Store.AppendAuditLog(workerID, llm.ClassPersonal, rawText, map[string]any{}, filePath, StatusFailed, serr.Message)
		return nil, serr
	}

	personal := personalFromMap(structured)
	if err := c.Store.UpsertPersonal(workerID, personal.Name, personal.DateOfBirth, personal.Address); err != nil {
		return nil, &Error{Code: CodeDatabaseSave, Stage: StagePersist,
			Message: "Failed to save extracted data", Err: err}
	}
	if err := c.Store.SetPersonalDocument(workerID, filePath, rawText); err != nil {
		return nil, &Error{Code: CodeDatabaseSave, Stage: StagePersist,
			Message: "Failed to save document path", Err: err}
	}
	_ = c.Store.AppendAuditLog(workerID, llm.ClassPersonal, rawText, structured, filePath, StatusSuccess, "")

	return &Result{FilePath: filePath, RawText: rawText, Personal: &personal}, nil
}

// ProcessEducational runs the full pipeline for one marksheet class
// level ("10th" or "12th") and appends an educational record on success.
func (c *Controller) ProcessEducational(ctx context.Context, workerID, classLevel string, in Input) (*Result, error) {
	if classLevel != llm.Class10th && classLevel != llm.Class12th {
		return nil, &Error{Code: CodeInvalidClassLevel, Stage: StageInput,
			Message: fmt.Sprintf("unknown class level %q", classLevel)}
	}
	if err := c.checkWorker(workerID); err != nil {
		return nil, err
	}

	filePath, perr := c.saveInput(workerID, classLevel, c.EducationalDir, in)
	if perr != nil {
		return nil, perr
	}

	rawText, oerr := c.runOCR(ctx, workerID, classLevel, filePath)
	if oerr != nil {
		return nil, oerr
	}

	structured, serr := c.extractStructured(ctx, classLevel, rawText)
	if serr != nil {
		_ = c.Store.AppendAuditLog(workerID, classLevel, rawText, map[string]any{}, filePath, StatusFailed, serr.Message)
		return nil, serr
	}

	education := educationFromMap(structured)
	if err := c.Store.AppendEducation(workerID, classLevel, education, rawText, filePath); err != nil {
		return nil, &Error{Code: CodeDatabaseSave, Stage: StagePersist,
			Message: "Failed to save extracted data", Err: err}
	}
	_ = c.Store.AppendAuditLog(workerID, classLevel, rawText, structured, filePath, StatusSuccess, "")

	return &Result{FilePath: filePath, RawText: rawText, Education: &education}, nil
}

func (c *Controller) checkWorker(workerID string) *Error {
	if strings.TrimSpace(workerID) == "" {
		return &Error{Code: CodeMissingWorkerID, Stage: StageInput, Message: "worker_id is required"}
	}
	worker, err := c.Store.GetWorker(workerID)
	if err != nil {
		return &Error{Code: CodeDatabase, Stage: StageInput, Message: "database error", Err: err}
	}
	if worker == nil {
		return &Error{Code: CodeWorkerNotFound, Stage: StageInput, Message: "Worker not found"}
	}
	return nil
}

// runOCR invokes the OCR collaborator and enforces the minimum-text
// guard. Failures persist an audited record before returning, so
// unreadable scans always leave a trail.
func (c *Controller) runOCR(ctx context.Context, workerID, docClass, filePath string) (string, *Error) {
	rawText, err := c.OCR.Text(ctx, filePath)
	if err != nil {
		_ = c.Store.AppendAuditLog(workerID, docClass, rawText, map[string]any{}, filePath, StatusFailed,
			fmt.Sprintf("OCR extraction failed: %v", err))
		return "", &Error{Code: CodeOCRInsufficient, Stage: StageOCR,
			Message: "Failed to extract text from document. Please upload a clearer image.", Err: err}
	}
	if utf8.RuneCountInString(strings.TrimSpace(rawText)) < c.minText() {
		_ = c.Store.AppendAuditLog(workerID, docClass, rawText, map[string]any{}, filePath, StatusFailed,
			"OCR extraction failed or returned insufficient text")
		return "", &Error{Code: CodeOCRInsufficient, Stage: StageOCR,
			Message: "Failed to extract text from document. Please upload a clearer image."}
	}
	return rawText, nil
}

// extractStructured obtains validated structured data for the raw text,
// consulting the cache first when one is configured.
func (c *Controller) extractStructured(ctx context.Context, docClass, rawText string) (map[string]any, *Error) {
	if c.Cache != nil {
		if data, ok := c.Cache.Get(ctx, docClass, rawText); ok {
			return data, nil
		}
	}

	response, err := c.LLM.Complete(ctx, llm.PromptFor(docClass, rawText))
	if err != nil {
		return nil, &Error{Code: CodeLLMCall, Stage: StageLLM,
			Message: "LLM extraction failed", Err: err}
	}

	data, err := llm.ParseObject(response)
	if err != nil {
		return nil, &Error{Code: CodeLLMUnparseable, Stage: StageValidation,
			Message: "Failed to parse LLM response", Err: err}
	}
	if err := llm.ValidateShape(docClass, data); err != nil {
		return nil, &Error{Code: CodeLLMUnparseable, Stage: StageValidation,
			Message: "LLM response did not match expected schema", Err: err}
	}

	if c.Cache != nil {
		c.Cache.Put(ctx, docClass, rawText, data)
	}
	return data, nil
}
