package assets

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded slide image.
type Image struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Fingerprint string `json:"fingerprint"`

	data    []byte
	decoded image.Image
}

// Bytes returns the original file contents.
func (i *Image) Bytes() []byte { return i.data }

// Decoded returns the decoded pixels.
func (i *Image) Decoded() image.Image { return i.decoded }

// MIME returns the media type for embedding the original bytes.
func (i *Image) MIME() string {
	switch i.Format {
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Aspect returns width / height, or 1 for a degenerate image.
func (i *Image) Aspect() float64 {
	if i.Width <= 0 || i.Height <= 0 {
		return 1
	}
	return float64(i.Width) / float64(i.Height)
}

// FitHeight returns the height an image scaled to width w would take.
func (i *Image) FitHeight(w float64) float64 {
	return w / i.Aspect()
}

// Scaled returns the image resized to fit within w × h pixels, preserving
// aspect ratio.
func (i *Image) Scaled(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return i.decoded
	}
	return imaging.Fit(i.decoded, w, h, imaging.Lanczos)
}

// Decode builds an Image from raw bytes.
func Decode(name string, data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		w, h = cfg.Width, cfg.Height
	}
	return &Image{
		Name:        name,
		Format:      format,
		Width:       w,
		Height:      h,
		Fingerprint: Fingerprint(data),
		data:        data,
		decoded:     img,
	}, nil
}

// Fingerprint returns the xxHash64 of data as 16 hex characters.
func Fingerprint(data []byte) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64(data))
	return hex.EncodeToString(buf[:])
}

// Loader reads images by name from a directory. Results, including misses,
// are memoised for the loader's lifetime.
type Loader struct {
	Dir    string
	Logger *log.Logger

	seen map[string]*Image
}

// NewLoader returns a loader rooted at dir. A nil logger uses log.Default().
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{Dir: dir, Logger: logger, seen: make(map[string]*Image)}
}

// TryLoad returns the named image, or (nil, false) if it is missing or
// cannot be decoded. It never fails.
func (l *Loader) TryLoad(name string) (*Image, bool) {
	if l == nil || name == "" {
		return nil, false
	}
	if l.seen == nil {
		l.seen = make(map[string]*Image)
	}
	if img, ok := l.seen[name]; ok {
		return img, img != nil
	}

	img := l.load(name)
	l.seen[name] = img
	return img, img != nil
}

// TryLoadFirst returns the first of names that loads.
func (l *Loader) TryLoadFirst(names ...string) (*Image, bool) {
	for _, n := range names {
		if img, ok := l.TryLoad(n); ok {
			return img, true
		}
	}
	return nil, false
}

// Fingerprints returns the fingerprints of every image loaded so far, keyed
// by name. Missing images map to the empty string.
func (l *Loader) Fingerprints() map[string]string {
	if l == nil {
		return nil
	}
	out := make(map[string]string, len(l.seen))
	for name, img := range l.seen {
		if img != nil {
			out[name] = img.Fingerprint
		} else {
			out[name] = ""
		}
	}
	return out
}

func (l *Loader) load(name string) *Image {
	path := filepath.Join(l.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		l.Logger.Debug("image not available", "path", path, "err", err)
		return nil
	}
	img, err := Decode(name, data)
	if err != nil {
		l.Logger.Debug("image not decodable", "path", path, "err", err)
		return nil
	}
	l.Logger.Debug("loaded image", "path", path, "bytes", len(data), "width", img.Width, "height", img.Height)
	return img
}
