// Package ocr turns a drawing into text with an external recognizer.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrNoText is returned when a drawing is recognized as empty.
var ErrNoText = errors.New("no text recognized")

// Recognizer extracts text from an image.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Tesseract runs the tesseract binary on a temporary PNG.
type Tesseract struct {
	// Binary defaults to "tesseract" looked up on PATH.
	Binary string
	// PageSegMode is passed as --psm; blocks of text read best with 6.
	PageSegMode int
}

// NewTesseract returns a recognizer using the tesseract binary on PATH.
func NewTesseract() *Tesseract {
	return &Tesseract{Binary: "tesseract", PageSegMode: 6}
}

// Available reports whether the binary can be found.
func (t *Tesseract) Available() bool {
	_, err := exec.LookPath(t.binary())
	return err == nil
}

// Recognize writes img to a temporary file and returns tesseract's output
// with surrounding whitespace trimmed.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	bin, err := exec.LookPath(t.binary())
	if err != nil {
		return "", fmt.Errorf("failed to find %s: %w", t.binary(), err)
	}
	tmp, err := os.CreateTemp("", "tracepad-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	defer func() {
		if rerr := os.Remove(tmp.Name()); rerr != nil {
			// Best-effort cleanup of the temp image.
			_ = rerr
		}
	}()
	if err := png.Encode(tmp, img); err != nil {
		if cerr := tmp.Close(); cerr != nil {
			// Best-effort close after encode failure.
			_ = cerr
		}
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}

	psm := t.PageSegMode
	if psm <= 0 {
		psm = 6
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, tmp.Name(), "stdout", "--psm", fmt.Sprintf("%d", psm))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("failed to run tesseract: %w: %s", err, msg)
		}
		return "", fmt.Errorf("failed to run tesseract: %w", err)
	}
	text := Clean(stdout.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (t *Tesseract) binary() string {
	if t.Binary == "" {
		return "tesseract"
	}
	return t.Binary
}

// Clean trims recognizer output and drops the form feed tesseract appends.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\f", "")
	return strings.TrimSpace(s)
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if text == "" {
		return ErrNoText
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Status renders a recognition outcome for the status line.
func Status(text string, err error) string {
	switch {
	case errors.Is(err, ErrNoText):
		return "OCR: no text recognized"
	case err != nil:
		return "OCR error: " + err.Error()
	default:
		return "OCR: " + text
	}
}
