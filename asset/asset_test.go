package asset

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestConvertSolid(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	s := Convert(solid(4, 4, red), 2, 2)
	if s.Width != 2 || s.Height != 2 || len(s.Cells) != 4 {
		t.Fatalf("Unexpected sprite shape %dx%d", s.Width, s.Height)
	}
	want, _ := colorful.MakeColor(red)
	for i, c := range s.Cells {
		if c.Rune != '█' {
			t.Errorf("Cell %d rune %q, want full block", i, c.Rune)
		}
		if c.Fg.DistanceLab(want) > 0.01 {
			t.Errorf("Cell %d fg %v, want red", i, c.Fg.Hex())
		}
	}
}

func TestConvertTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 4))
	// Top cell transparent; bottom cell has only its lower half opaque
	for x := 0; x < 2; x++ {
		img.Set(x, 3, color.NRGBA{B: 255, A: 255})
	}
	s := Convert(img, 1, 2)

	if c := s.At(0, 0); c.Rune != 0 {
		t.Errorf("Expected transparent top cell, got %q", c.Rune)
	}
	c := s.At(0, 1)
	if c.Rune != '▄' || c.HasBg {
		t.Errorf("Expected lower half block without background, got %q hasBg=%v", c.Rune, c.HasBg)
	}
}

func TestConvertEmpty(t *testing.T) {
	if s := Convert(solid(4, 4, color.White), 0, 3); len(s.Cells) != 0 {
		t.Error("Expected empty sprite for zero width")
	}
}

func TestDecodeDefault(t *testing.T) {
	img, err := Decode("")
	if err != nil {
		t.Fatalf("Decode default: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Unexpected default size %v", img.Bounds())
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bad); err == nil {
		t.Error("Expected error for corrupt file")
	}
}

func waitDone(t *testing.T, h *HazardIcon) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Load did not finish")
	}
}

func TestHazardIconLoad(t *testing.T) {
	h := NewHazardIcon()
	if h.Ready() || h.Sprite(4, 2) != nil {
		t.Fatal("Icon must not be usable before loading")
	}

	h.Load("")
	waitDone(t, h)
	if !h.Ready() {
		t.Fatal("Expected default icon to load")
	}
	s := h.Sprite(4, 2)
	if s == nil || s.Width != 4 || s.Height != 2 {
		t.Fatalf("Unexpected sprite %+v", s)
	}
	if h.Sprite(4, 2) != s {
		t.Error("Expected cached sprite for the same size")
	}
}

func TestHazardIconLoadFailure(t *testing.T) {
	h := NewHazardIcon()
	h.Load(filepath.Join(t.TempDir(), "missing.png"))
	waitDone(t, h)
	if h.Ready() || h.Sprite(4, 2) != nil {
		t.Error("Failed load must leave the icon unavailable")
	}
}
