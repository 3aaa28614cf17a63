package models

// PersonalData holds the normalized fields extracted from a personal
// identity document.
type PersonalData struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// EducationData holds the normalized fields extracted from a 10th or
// 12th marksheet.
type EducationData struct {
	DocumentType  string `json:"document_type"`
	Qualification string `json:"qualification"`
	Board         string `json:"board"`
	Stream        string `json:"stream"`
	YearOfPassing string `json:"year_of_passing"`
	SchoolName    string `json:"school_name"`
	MarksType     string `json:"marks_type"`
	Marks         string `json:"marks"`
}
