package textures

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"
)

// DefaultMaxSize caps the longer edge of a decoded image. 8k maps exceed many GPUs' texture limit.
const DefaultMaxSize = 4096

// Result is one finished decode. Img is tightly packed RGBA (Stride == 4*width, origin 0,0)
// and nil when Err is set.
type Result struct {
	Key  string
	Path string
	Img  *image.RGBA
	Err  error
}

// Loader decodes images in background goroutines and hands them back on the render thread via Poll.
// GPU upload happens in the Poll callback so it stays on the thread that owns the GL context.
type Loader struct {
	MaxSize int
	done    chan Result
	pending int
}

// NewLoader returns a loader that can have up to capacity decodes in flight without blocking.
func NewLoader(maxSize, capacity int) *Loader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if capacity <= 0 {
		capacity = 1
	}
	return &Loader{MaxSize: maxSize, done: make(chan Result, capacity)}
}

// Request starts decoding path in the background. The result is reported under key.
func (l *Loader) Request(key, path string) {
	l.pending++
	go func() {
		img, err := Decode(path, l.MaxSize)
		l.done <- Result{Key: key, Path: path, Img: img, Err: err}
	}()
}

// Pending is the number of requests not yet returned by Poll.
func (l *Loader) Pending() int {
	return l.pending
}

// Poll passes every finished result to upload without blocking and returns how many it handled.
func (l *Loader) Poll(upload func(Result)) int {
	n := 0
	for l.pending > 0 {
		select {
		case r := <-l.done:
			l.pending--
			n++
			upload(r)
		default:
			return n
		}
	}
	return n
}

// Decode reads an image file and downsamples it so neither edge exceeds maxSize, keeping aspect.
func Decode(path string, maxSize int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textures: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("textures: decode %s: %w", path, err)
	}
	return packed(Fit(img, maxSize)), nil
}

// packed returns img as RGBA with no row padding and a zero origin, copying only when needed.
func packed(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		if b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
			return rgba
		}
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Fit returns img unchanged if it fits in maxSize, otherwise a linearly resampled copy.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	return transform.Resize(img, w, h, transform.Linear)
}
