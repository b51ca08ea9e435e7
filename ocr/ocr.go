//go:build ocr

// Package ocr wraps the Tesseract engine (via gosseract) for reading text
// out of scanned form regions. It requires Tesseract to be installed on the
// system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// The package is only compiled with the "ocr" build tag; without it a stub
// is used that returns ErrOCRNotEnabled from every operation.
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRNotEnabled is returned by the stub build. It is declared here too
// so callers can test for it regardless of build tags.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps a Tesseract session. It is not safe for concurrent use;
// create one client per goroutine.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. Close it when no longer needed to release
// the underlying Tesseract resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources. Safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) used for recognition. Multiple languages
// are "+" separated (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetWhitelist restricts recognition to the given characters. Useful for
// numeric regions such as license or policy numbers.
func (c *Client) SetWhitelist(chars string) error {
	return c.client.SetWhitelist(chars)
}

// SetPageSegMode sets the page segmentation mode, which controls how
// Tesseract analyzes region layout. See gosseract.PageSegMode.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
