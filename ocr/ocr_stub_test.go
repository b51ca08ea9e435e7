//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Error("expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubOperationsError(t *testing.T) {
	client := &Client{}
	if _, err := client.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetWhitelist("0123456789"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetWhitelist error = %v, want ErrOCRNotEnabled", err)
	}
}
