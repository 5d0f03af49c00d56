package viz

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Sprite is an actor image loaded in the background. The render loop
// polls Ready each frame and falls back to a vector marker until the
// load completes; if the load fails the flag never flips and the
// fallback is used for the rest of the run. One attempt, no retry.
type Sprite struct {
	ready atomic.Bool
	img   image.Image
	lum   [][]float64
	w, h  int
}

// LoadSprite begins fetching the image at src, which is either a file
// path or an http(s) URL. The returned sprite is usable immediately;
// it just is not Ready yet.
func LoadSprite(src string) *Sprite {
	s := &Sprite{}
	if src == "" {
		return s
	}
	go s.load(src)
	return s
}

func (s *Sprite) load(src string) {
	img, err := fetchImage(src)
	if err != nil {
		return
	}

	// Precompute a luminance grid so per-frame stamping is cheap.
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	lum := make([][]float64, h)
	for y := 0; y < h; y++ {
		lum[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a < 0x4000 {
				lum[y][x] = 0
				continue
			}
			lum[y][x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 0xffff
		}
	}

	s.img = img
	s.lum = lum
	s.w, s.h = w, h
	s.ready.Store(true)
}

func fetchImage(src string) (image.Image, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(src)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		img, _, err := image.Decode(resp.Body)
		return img, err
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Ready reports whether the image has finished loading and decoding.
func (s *Sprite) Ready() bool {
	return s.ready.Load()
}

// Image returns the decoded image, or nil before the load completes.
func (s *Sprite) Image() image.Image {
	if !s.Ready() {
		return nil
	}
	return s.img
}

// Stamp draws the sprite onto the canvas centered at sub-pixel (cx, cy),
// rotated by angle (radians, screen orientation) and scaled to size
// sub-pixels on its longer side. Dots light where the source pixel is
// bright. Reports false before the image is ready so the caller can
// draw its fallback instead.
func (s *Sprite) Stamp(c *Canvas, cx, cy int, angle float64, size int) bool {
	if !s.Ready() || size <= 0 {
		return false
	}

	long := s.w
	if s.h > long {
		long = s.h
	}
	scale := float64(long) / float64(size)

	sin, cos := math.Sincos(angle)
	half := size / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			// Rotate the destination offset back into source space.
			sx := float64(dx)*cos + float64(dy)*sin
			sy := -float64(dx)*sin + float64(dy)*cos
			ix := int(sx*scale) + s.w/2
			iy := int(sy*scale) + s.h/2
			if ix < 0 || ix >= s.w || iy < 0 || iy >= s.h {
				continue
			}
			if s.lum[iy][ix] > 0.5 {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
	return true
}
