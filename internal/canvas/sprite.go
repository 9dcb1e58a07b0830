package canvas

import "fmt"

// Sprite is a caller-owned flat row-major RGBA pixel array with explicit
// dimensions. The canvas only borrows a sprite for the duration of one
// blit call and never mutates it.
type Sprite struct {
	W, H int
	Pix  []Color
}

// NewSprite validates the dimensions against the pixel slice length.
func NewSprite(w, h int, pix []Color) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid sprite dimensions %dx%d (must be positive)", w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("canvas: sprite has %d pixels, expected %d for %dx%d", len(pix), w*h, w, h)
	}
	return &Sprite{W: w, H: h, Pix: pix}, nil
}

// FillSprite returns a w x h sprite filled with a single color.
func FillSprite(w, h int, col Color) *Sprite {
	pix := make([]Color, w*h)
	for i := range pix {
		pix[i] = col
	}
	return &Sprite{W: w, H: h, Pix: pix}
}

// Checker returns a w x h two-color checkerboard sprite.
func Checker(w, h int, on, off Color) *Sprite {
	pix := make([]Color, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if (i+j)%2 == 0 {
				pix[j*w+i] = on
			} else {
				pix[j*w+i] = off
			}
		}
	}
	return &Sprite{W: w, H: h, Pix: pix}
}
