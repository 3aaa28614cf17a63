package extract

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// Input is one uploaded document: either raw file bytes with the
// original filename, or a base64 camera capture (optionally prefixed
// with a data URI scheme). Exactly one must be set.
type Input struct {
	FileBytes  []byte
	Filename   string
	CameraData string
}

// ValidFormat reports whether the filename carries an allowed extension.
func ValidFormat(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return allowedExtensions[ext]
}

// saveInput resolves and persists the uploaded document to disk,
// returning the saved path. Format validation happens before any decode
// so a bad extension never costs an OCR or LLM call.
func (c *Controller) saveInput(workerID, docClass, dir string, in Input) (string, *Error) {
	hasFile := len(in.FileBytes) > 0 && in.Filename != ""
	hasCamera := strings.TrimSpace(in.CameraData) != ""

	if !hasFile && !hasCamera {
		return "", &Error{Code: CodeMissingInput, Stage: StageInput,
			Message: "Either document_file or camera_data is required"}
	}
	if hasFile && hasCamera {
		return "", &Error{Code: CodeMissingInput, Stage: StageInput,
			Message: "Provide exactly one of document_file or camera_data"}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &Error{Code: CodeFileSave, Stage: StageStorage,
			Message: "Failed to create upload directory", Err: err}
	}

	if hasCamera {
		img, err := decodeCamera(in.CameraData)
		if err != nil {
			return "", &Error{Code: CodeCameraDecode, Stage: StageDecode,
				Message: fmt.Sprintf("Failed to convert camera capture: %v", err), Err: err}
		}
		path := filepath.Join(dir, workerID+"_"+docClass+".png")
		f, err := os.Create(path)
		if err != nil {
			return "", &Error{Code: CodeFileSave, Stage: StageStorage,
				Message: "Failed to save camera image", Err: err}
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return "", &Error{Code: CodeFileSave, Stage: StageStorage,
				Message: "Failed to save camera image", Err: err}
		}
		return path, nil
	}

	if !ValidFormat(in.Filename) {
		return "", &Error{Code: CodeInvalidFormat, Stage: StageFormat,
			Message: "Invalid file format. Allowed: PDF, JPG, PNG"}
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(in.Filename)), ".")
	path := filepath.Join(dir, workerID+"_"+docClass+"."+ext)
	if err := os.WriteFile(path, in.FileBytes, 0o644); err != nil {
		return "", &Error{Code: CodeFileSave, Stage: StageStorage,
			Message: "Failed to save file", Err: err}
	}
	return path, nil
}

// decodeCamera turns a base64 camera payload into an image, stripping a
// leading data-URI prefix when present.
func decodeCamera(data string) (image.Image, error) {
	if i := strings.Index(data, ","); i != -1 {
		data = data[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("image decode: %w", err)
	}
	return img, nil
}
