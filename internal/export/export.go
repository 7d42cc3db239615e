// Package export writes canvas images to disk.
package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	captionSize    = 14.0
	captionPadding = 6.0
)

// FileName returns the name a drawing saved at t is written under.
func FileName(t time.Time) string {
	return "drawing_" + t.Format("20060102-150405") + ".png"
}

// SavePNG writes img into dir as a timestamped PNG and returns its path. A
// non-empty caption is printed along the bottom edge. dir is created when
// missing.
func SavePNG(img image.Image, dir string, now time.Time, caption string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create save dir: %w", err)
	}
	dc := gg.NewContextForImage(img)
	if caption != "" {
		face, err := captionFace()
		if err != nil {
			return "", err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.RGBA{R: 90, G: 90, B: 90, A: 255})
		dc.DrawStringAnchored(caption, captionPadding, float64(dc.Height())-captionPadding, 0, 0)
	}
	path := filepath.Join(dir, FileName(now))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to save png: %w", err)
	}
	return path, nil
}

func captionFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
