package llm

import "fmt"

// Document classes with a dedicated extraction schema.
const (
	ClassPersonal = "personal"
	Class10th     = "10th"
	Class12th     = "12th"
)

const personalPromptFmt = `Extract personal information from the OCR text below.
Return ONLY valid JSON matching this schema exactly:

{
  "name": "full name from document",
  "date_of_birth": "format as YYYY-MM-DD",
  "address": "complete address from document"
}

Rules:
- If a field is not clearly found, use null
- For date_of_birth, convert to YYYY-MM-DD format
- Return ONLY JSON, no other text

OCR Text:
%s`

const marksheetPromptFmt = `Extract Class %s marksheet information from the OCR text below.
Return ONLY valid JSON matching this schema exactly:

{
  "document_type": "e.g., 'marksheet' or 'certificate'",
  "qualification": "Class %s",
  "board": "e.g., 'CBSE', 'State Board', etc",
  "stream": "e.g., 'Science', 'Commerce', 'Arts', or 'General'",
  "year_of_passing": "e.g., '2017' or '2015-2016'",
  "school_name": "full school name",
  "marks_type": "either 'Percentage', 'CGPA', or 'Marks'",
  "marks": "as appears on document (e.g., '87.5%%' or '8.2 CGPA' or '420/500')"
}

Rules:
- If a field is not found, use null
- Extract exactly as shown in the document
- Return ONLY JSON, no other text

OCR Text:
%s`

// PromptFor builds the schema-specific extraction prompt for a document
// class. Unknown classes fall back to the personal prompt.
func PromptFor(docClass, rawText string) string {
	switch docClass {
	case Class10th:
		return fmt.Sprintf(marksheetPromptFmt, "10", "10", rawText)
	case Class12th:
		return fmt.Sprintf(marksheetPromptFmt, "12", "12", rawText)
	default:
		return fmt.Sprintf(personalPromptFmt, rawText)
	}
}
