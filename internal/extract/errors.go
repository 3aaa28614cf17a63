package extract

// Stage names the pipeline step a document failed at.
type Stage string

const (
	StageInput      Stage = "input"
	StageFormat     Stage = "format_validated"
	StageDecode     Stage = "decode"
	StageStorage    Stage = "storage"
	StageOCR        Stage = "ocr"
	StageLLM        Stage = "llm"
	StageValidation Stage = "validation"
	StagePersist    Stage = "persist"
)

// Caller-facing error codes. Each failure kind keeps its own code so a
// client can tell "upload a clearer photo" from "retry later".
const (
	CodeMissingWorkerID   = "MISSING_WORKER_ID"
	CodeWorkerNotFound    = "WORKER_NOT_FOUND"
	CodeMissingInput      = "MISSING_FILE"
	CodeInvalidFormat     = "INVALID_FILE_FORMAT"
	CodeInvalidClassLevel = "INVALID_CLASS_LEVEL"
	CodeCameraDecode      = "CAMERA_CONVERSION_FAILED"
	CodeFileSave          = "FILE_SAVE_FAILED"
	CodeOCRInsufficient   = "OCR_EXTRACTION_FAILED"
	CodeLLMCall           = "LLM_CALL_FAILED"
	CodeLLMUnparseable    = "LLM_RESPONSE_UNPARSEABLE"
	CodeDatabase          = "DATABASE_ERROR"
	CodeDatabaseSave      = "DATABASE_SAVE_FAILED"
)

// Error is a typed pipeline failure. Stage failures are always recovered
// into one of these and returned; the pipeline never panics or lets a
// collaborator error escape untyped.
type Error struct {
	Code    string
	Stage   Stage
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
