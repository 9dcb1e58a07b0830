// Package assets implements the asset collaborator: it decodes image
// files on disk into the raw sprite pixel arrays scenes blit from. The
// engine core never parses image formats itself; it only ever sees
// already-decoded RGBA data.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG sprites
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // BMP sprites

	"github.com/vovakirdan/retropix/internal/canvas"
)

// Dir loads sprites from image files under a root directory, caching
// decoded pixel data by file name.
type Dir struct {
	root  string
	cache map[string]*canvas.Sprite
}

// NewDir creates a loader rooted at the given directory. The directory
// is not touched until a sprite is requested.
func NewDir(root string) *Dir {
	return &Dir{root: root, cache: make(map[string]*canvas.Sprite)}
}

// Sprite decodes the image file name (relative to the root directory)
// into a flat RGBA sprite. Decoded sprites are cached; repeated lookups
// return the same instance.
func (d *Dir) Sprite(name string) (*canvas.Sprite, error) {
	if sp, ok := d.cache[name]; ok {
		return sp, nil
	}

	f, err := os.Open(filepath.Join(d.root, name))
	if err != nil {
		return nil, fmt.Errorf("assets: open sprite %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode sprite %q: %w", name, err)
	}

	sp, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %q: %w", name, err)
	}
	d.cache[name] = sp
	return sp, nil
}

// FromImage converts any decoded image into a flat row-major RGBA sprite.
// Channels are converted to straight (non-premultiplied) alpha, which is
// what the canvas over-blend expects; reading premultiplied values here
// would attenuate semi-transparent pixels twice.
func FromImage(img image.Image) (*canvas.Sprite, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]canvas.Color, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, canvas.RGBA(c.R, c.G, c.B, c.A))
		}
	}
	return canvas.NewSprite(w, h, pix)
}

// Static serves pre-decoded sprites from memory. Used by tests and by
// scenes whose assets are generated procedurally.
type Static map[string]*canvas.Sprite

// Sprite returns the sprite stored under name.
func (s Static) Sprite(name string) (*canvas.Sprite, error) {
	sp, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sprite %q", name)
	}
	return sp, nil
}
