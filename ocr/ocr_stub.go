//go:build !ocr

// Package ocr wraps the Tesseract engine (via gosseract) for reading text
// out of scanned form regions.
//
// This is the stub implementation used when the "ocr" build tag is not set;
// every operation returns ErrOCRNotEnabled. To enable OCR, rebuild with the
// "ocr" build tag:
//
//	go build -tags ocr
//
// which requires Tesseract to be installed on the system.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode mirrors gosseract's page segmentation modes so code compiled
// without the tag still type-checks.
type PageSegMode int

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetWhitelist returns an error indicating OCR support is not enabled.
func (c *Client) SetWhitelist(chars string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
