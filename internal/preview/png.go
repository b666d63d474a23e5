package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes img magnified scale times. Pixels stay sharp.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale < 1 {
		return fmt.Errorf("preview: scale %d must be at least 1", scale)
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return png.Encode(w, dst)
}

// Recorder writes numbered PNG files into a directory.
type Recorder struct {
	dir   string
	scale int

	mu sync.Mutex
	n  int
}

// NewRecorder creates dir if needed.
func NewRecorder(dir string, scale int) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &Recorder{dir: dir, scale: scale}, nil
}

// Save writes img as the next frame and returns its path.
func (r *Recorder) Save(img image.Image) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++
	path := filepath.Join(r.dir, fmt.Sprintf("frame-%04d.png", r.n))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	if err := WritePNG(f, img, r.scale); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	return path, nil
}

// Frames returns how many frames were saved.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}
