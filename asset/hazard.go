package asset

import (
	"bytes"
	_ "embed"
	"image"
	_ "image/png"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sushi-belt/core"
)

//go:embed bomb.png
var defaultBomb []byte

// Decode reads a PNG from path, or the built-in bomb icon when path is empty
func Decode(path string) (image.Image, error) {
	data := defaultBomb
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read sprite")
		}
		data = b
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode sprite %q", path)
	}
	return img, nil
}

type spriteSize struct{ cols, rows int }

// HazardIcon is the hazard image, loaded once in the background
// Until the load completes, or if it fails, Sprite returns nil and callers draw a glyph instead
type HazardIcon struct {
	img  atomic.Pointer[image.Image]
	done chan struct{}
	once sync.Once

	mu    sync.Mutex
	cache map[spriteSize]*Sprite
}

// NewHazardIcon creates an unloaded icon
func NewHazardIcon() *HazardIcon {
	return &HazardIcon{
		done:  make(chan struct{}),
		cache: make(map[spriteSize]*Sprite),
	}
}

// Load starts decoding path in the background; later calls are ignored
func (h *HazardIcon) Load(path string) {
	h.once.Do(func() {
		core.Go(func() {
			defer close(h.done)
			img, err := Decode(path)
			if err != nil {
				log.Printf("[Asset] hazard icon unavailable, drawing glyph: %v", err)
				return
			}
			h.img.Store(&img)
			log.Printf("[Asset] hazard icon loaded: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
		})
	})
}

// Done is closed once the load attempt finishes, successful or not
func (h *HazardIcon) Done() <-chan struct{} { return h.done }

// Ready reports whether the image decoded
func (h *HazardIcon) Ready() bool { return h.img.Load() != nil }

// Sprite returns the icon converted to cols×rows cells, or nil if not loaded
func (h *HazardIcon) Sprite(cols, rows int) *Sprite {
	p := h.img.Load()
	if p == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	key := spriteSize{cols, rows}

	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.cache[key]; ok {
		return s
	}
	s := Convert(*p, cols, rows)
	h.cache[key] = s
	return s
}
