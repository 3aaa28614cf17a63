package ocr

import (
	"context"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// VisionEngine runs OCR through the Google Cloud Vision document-text
// detector.
type VisionEngine struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionEngine builds a Vision-backed engine. credentialsFile may be
// empty, in which case ambient application-default credentials are used.
func NewVisionEngine(ctx context.Context, credentialsFile string) (*VisionEngine, error) {
	var client *vision.ImageAnnotatorClient
	var err error
	if credentialsFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to init OCR client: %w", err)
	}
	return &VisionEngine{client: client}, nil
}

// Text reads the file and returns the full document text annotation.
// An image with no detectable text yields "" without error.
func (e *VisionEngine) Text(ctx context.Context, filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	img := &visionpb.Image{Content: content}
	annotation, err := e.client.DetectDocumentText(ctx, img, nil)
	if err != nil {
		return "", fmt.Errorf("vision text detection: %w", err)
	}
	if annotation == nil {
		return "", nil
	}
	return annotation.Text, nil
}

// Close releases the underlying API client.
func (e *VisionEngine) Close() error {
	return e.client.Close()
}
