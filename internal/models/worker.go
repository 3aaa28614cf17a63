package models

import "time"

// Worker is the primary record. Personal-document extraction fills in
// name/dob/address; verification updates the status columns.
type Worker struct {
	WorkerID             string    `gorm:"primaryKey;column:worker_id" json:"worker_id"`
	MobileNumber         string    `gorm:"column:mobile_number" json:"mobile_number"`
	Name                 string    `json:"name"`
	DOB                  string    `gorm:"column:dob" json:"dob"`
	Address              string    `json:"address"`
	PersonalDocumentPath string    `gorm:"column:personal_document_path" json:"personal_document_path,omitempty"`
	PersonalOCRRawText   string    `gorm:"column:personal_ocr_raw_text" json:"-"`
	VerificationStatus   string    `gorm:"column:verification_status" json:"verification_status,omitempty"`
	VerificationErrors   string    `gorm:"column:verification_errors;type:text" json:"-"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// EducationalDocument is one extracted marksheet, appended per upload.
// ClassLevel is "10th" or "12th". Percentage is the best-effort numeric
// coercion of Marks; nil when unparseable.
type EducationalDocument struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WorkerID      string    `gorm:"column:worker_id;index" json:"worker_id"`
	ClassLevel    string    `gorm:"column:class_level;index" json:"class_level"`
	DocumentType  string    `gorm:"column:document_type" json:"document_type"`
	Qualification string    `json:"qualification"`
	Board         string    `json:"board"`
	Stream        string    `json:"stream"`
	YearOfPassing string    `gorm:"column:year_of_passing" json:"year_of_passing"`
	SchoolName    string    `gorm:"column:school_name" json:"school_name"`
	MarksType     string    `gorm:"column:marks_type" json:"marks_type"`
	Marks         string    `json:"marks"`
	Percentage    *float64  `json:"percentage,omitempty"`
	RawOCRText    string    `gorm:"column:raw_ocr_text" json:"-"`
	FilePath      string    `gorm:"column:file_path" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExtractionLog is the audit trail of every extraction attempt,
// successful or not.
type ExtractionLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkerID   string    `gorm:"column:worker_id;index" json:"worker_id"`
	DocClass   string    `gorm:"column:doc_class" json:"doc_class"`
	RawText    string    `gorm:"column:raw_text;type:text" json:"raw_text"`
	Structured string    `gorm:"column:structured;type:text" json:"structured"`
	FilePath   string    `gorm:"column:file_path" json:"file_path"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// VerificationLog records one pairwise comparison from a verification
// run.
type VerificationLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WorkerID       string    `gorm:"column:worker_id;index" json:"worker_id"`
	ComparisonType string    `gorm:"column:comparison_type" json:"comparison_type"`
	Details        string    `gorm:"type:text" json:"details"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
