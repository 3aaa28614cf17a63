// Package ocr provides the text-extraction engines behind the document
// pipeline. Engines are black boxes: given a saved file they return raw
// text or an error, and may legitimately return short or empty text on
// unreadable scans.
package ocr

import "context"

// Engine converts a document file into raw text.
type Engine interface {
	Text(ctx context.Context, filePath string) (string, error)
}
