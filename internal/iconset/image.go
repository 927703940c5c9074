package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// AlphaOptions controls how transparency is removed during Normalize.
// With Flatten unset the alpha channel is dropped and colour channels are
// kept as stored; with Flatten set pixels are composited over Background.
type AlphaOptions struct {
	Flatten    bool
	Background color.NRGBA
}

// Open decodes the image at path. The file is closed on every return path.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imaging.Decode(f)
}

// Normalize returns an opaque, square copy of src: alpha is removed per
// opts, then the centred min(w, h) square is cropped out. src is not
// modified.
func Normalize(src image.Image, opts AlphaOptions) *image.NRGBA {
	rgb := toRGB(src, opts)
	b := rgb.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h {
		return rgb
	}
	size := min(w, h)
	left := (w - size) / 2
	top := (h - size) / 2
	return imaging.Crop(rgb, image.Rect(left, top, left+size, top+size))
}

func toRGB(src image.Image, opts AlphaOptions) *image.NRGBA {
	if !opts.Flatten {
		dst := imaging.Clone(src)
		opaque(dst)
		return dst
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	bg := opts.Background
	bg.A = 0xff
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Over)
	return dst
}

// opaque forces every pixel's alpha to 255 so the PNG encoder writes
// 8-bit RGB.
func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// Resize scales a square image to size×size with a Lanczos filter.
func Resize(img *image.NRGBA, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid target size %d", size)
	}
	out := imaging.Resize(img, size, size, imaging.Lanczos)
	if b := out.Bounds(); b.Dx() != size || b.Dy() != size {
		return nil, fmt.Errorf("resized to %dx%d, want %dx%d", b.Dx(), b.Dy(), size, size)
	}
	opaque(out)
	return out, nil
}

// EncodePNG encodes img as PNG. Opaque NRGBA input yields 8-bit RGB output.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
