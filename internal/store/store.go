// Package store is the gorm-backed persistence collaborator. The
// extraction pipeline and the verification flow both talk to it through
// narrow interfaces they declare themselves; nothing in here reaches
// back into the core.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"veriwork/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateWorker inserts a new worker row.
func (s *Store) CreateWorker(workerID, mobileNumber string) error {
	worker := models.Worker{WorkerID: workerID, MobileNumber: mobileNumber}
	if err := s.db.Create(&worker).Error; err != nil {
		return fmt.Errorf("create worker: %w", err)
	}
	return nil
}

// GetWorker returns the worker row, or (nil, nil) when no such worker
// exists.
func (s *Store) GetWorker(workerID string) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.Where("worker_id = ?", workerID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &worker, nil
}

// UpsertPersonal writes the extracted personal fields onto the worker
// row as a single update.
func (s *Store) UpsertPersonal(workerID, name, dob, address string) error {
	res := s.db.Model(&models.Worker{}).
		Where("worker_id = ?", workerID).
		Updates(map[string]any{"name": name, "dob": dob, "address": address})
	if res.Error != nil {
		return fmt.Errorf("update worker data: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update worker data: no worker %s", workerID)
	}
	return nil
}

// SetPersonalDocument records where the personal document was saved and
// the raw OCR text captured from it.
func (s *Store) SetPersonalDocument(workerID, filePath, rawText string) error {
	res := s.db.Model(&models.Worker{}).
		Where("worker_id = ?", workerID).
		Updates(map[string]any{"personal_document_path": filePath, "personal_ocr_raw_text": rawText})
	if res.Error != nil {
		return fmt.Errorf("save personal document path: %w", res.Error)
	}
	return nil
}

// AppendEducation appends an extracted marksheet record for one class
// level. The marks value is coerced to a numeric percentage on a best
// effort basis; unparseable marks leave Percentage nil rather than
// rejecting the record.
func (s *Store) AppendEducation(workerID, classLevel string, rec models.EducationData, rawText, filePath string) error {
	row := models.EducationalDocument{
		WorkerID:      workerID,
		ClassLevel:    classLevel,
		DocumentType:  rec.DocumentType,
		Qualification: rec.Qualification,
		Board:         rec.Board,
		Stream:        rec.Stream,
		YearOfPassing: rec.YearOfPassing,
		SchoolName:    rec.SchoolName,
		MarksType:     rec.MarksType,
		Marks:         rec.Marks,
		Percentage:    ParsePercentage(rec.MarksType, rec.Marks),
		RawOCRText:    rawText,
		FilePath:      filePath,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("save educational document: %w", err)
	}
	return nil
}

// GetEducation returns the most recent educational document for a class
// level, or (nil, nil) when none exists.
func (s *Store) GetEducation(workerID, classLevel string) (*models.EducationalDocument, error) {
	var doc models.EducationalDocument
	err := s.db.Where("worker_id = ? AND class_level = ?", workerID, classLevel).
		Order("created_at DESC").
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get educational document: %w", err)
	}
	return &doc, nil
}

// AppendAuditLog records one extraction attempt, successful or failed.
func (s *Store) AppendAuditLog(workerID, docClass, rawText string, structured any, filePath, status, reason string) error {
	structuredJSON := "{}"
	if structured != nil {
		if b, err := json.Marshal(structured); err == nil {
			structuredJSON = string(b)
		}
	}
	row := models.ExtractionLog{
		WorkerID:   workerID,
		DocClass:   docClass,
		RawText:    rawText,
		Structured: structuredJSON,
		FilePath:   filePath,
		Status:     status,
		Reason:     reason,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("save extraction log: %w", err)
	}
	return nil
}

// AppendVerificationLog records one pairwise comparison from a
// verification run.
func (s *Store) AppendVerificationLog(workerID, comparisonType string, details any, status string) error {
	detailsJSON := "{}"
	if b, err := json.Marshal(details); err == nil {
		detailsJSON = string(b)
	}
	row := models.VerificationLog{
		WorkerID:       workerID,
		ComparisonType: comparisonType,
		Details:        detailsJSON,
		Status:         status,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("save verification log: %w", err)
	}
	return nil
}

// UpdateVerificationStatus writes the overall verdict and, when present,
// the failed-comparison summary onto the worker row. A nil summary
// clears any previous one.
func (s *Store) UpdateVerificationStatus(workerID, overallStatus string, summary any) error {
	summaryJSON := ""
	if summary != nil {
		b, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal verification errors: %w", err)
		}
		summaryJSON = string(b)
	}
	res := s.db.Model(&models.Worker{}).
		Where("worker_id = ?", workerID).
		Updates(map[string]any{"verification_status": overallStatus, "verification_errors": summaryJSON})
	if res.Error != nil {
		return fmt.Errorf("update verification status: %w", res.Error)
	}
	return nil
}

// ParsePercentage coerces a marks string into a numeric percentage when
// the marks type says it is one. It strips a trailing "%" and parses the
// rest; anything unparseable yields nil.
func ParsePercentage(marksType, marks string) *float64 {
	if !strings.EqualFold(strings.TrimSpace(marksType), "percentage") {
		return nil
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(marks, "%", ""))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
