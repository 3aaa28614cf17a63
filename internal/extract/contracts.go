package extract

import (
	"context"

	"veriwork/internal/models"
)

// OCREngine is the text-extraction collaborator. It may return short or
// empty text on unreadable scans; the pipeline decides what is usable.
type OCREngine interface {
	Text(ctx context.Context, filePath string) (string, error)
}

// LLMClient is the completion collaborator used for structuring raw OCR
// text.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Cache is an optional structured-extraction cache. Implementations must
// be safe to call even when the underlying backend is unreachable.
type Cache interface {
	Get(ctx context.Context, docClass, rawText string) (map[string]any, bool)
	Put(ctx context.Context, docClass, rawText string, data map[string]any)
}

// Store is the slice of the persistence collaborator the pipeline needs.
type Store interface {
	GetWorker(workerID string) (*models.Worker, error)
	UpsertPersonal(workerID, name, dob, address string) error
	SetPersonalDocument(workerID, filePath, rawText string) error
	AppendEducation(workerID, classLevel string, rec models.EducationData, rawText, filePath string) error
	AppendAuditLog(workerID, docClass, rawText string, structured any, filePath, status, reason string) error
}
