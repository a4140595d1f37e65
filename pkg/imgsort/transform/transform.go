// Package transform turns decoded product photos into fixed-size, opaque
// JPEG thumbnails.
package transform

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder
)

const (
	// Width is the thumbnail width in pixels.
	Width = 270
	// Height is the thumbnail height in pixels.
	Height = 300
	// JPEGQuality is the encoder quality used for every thumbnail.
	JPEGQuality = 75
)

// ErrEmptyImage indicates a decoded image with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Open decodes the image at path. The file is closed before Open returns.
func Open(path string) (image.Image, error) {
	return imaging.Open(path)
}

// Thumbnail flattens img to an opaque image and stretches it to
// Width x Height without preserving the aspect ratio.
func Thumbnail(img image.Image) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	dst := imaging.Resize(Flatten(img), Width, Height, imaging.CatmullRom)
	// Resampling rounds alpha, so pin it again.
	setOpaque(dst)
	return dst, nil
}

// Flatten converts img to NRGBA and discards its alpha channel, keeping the
// stored color of transparent pixels. Paletted images expand their
// transparent entries to NRGBA first.
func Flatten(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	setOpaque(dst)
	return dst
}

func setOpaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// SaveJPEG encodes img as a JPEG file at path.
func SaveJPEG(img image.Image, path string) error {
	return imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality))
}
