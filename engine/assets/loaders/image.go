package loaders

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// register the decoders for the texture formats used by scenes
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// ImageLoader decodes image files into packed pixel data ready for
// GPU upload.
type ImageLoader struct {
	// FlipY flips the image vertically on load so that row 0 ends up
	// at the bottom, matching the texture coordinate origin.
	FlipY bool
}

func (il *ImageLoader) Load(path string) (*metadata.ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %s: %w", path, err)
	}

	channels := channelCount(img)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	if il.FlipY {
		flipVertically(rgba)
	}

	pixels := rgba.Pix
	if channels == 3 {
		pixels = stripAlpha(rgba.Pix)
	}

	return &metadata.ImageData{
		Pixels:       pixels,
		Width:        uint32(width),
		Height:       uint32(height),
		ChannelCount: channels,
	}, nil
}

// channelCount reports how many channels the source image carries.
// The decoded pixels are always expanded to RGBA first; the channel
// count of the original format decides whether the upload uses an
// RGB or RGBA layout, or is rejected outright.
func channelCount(img image.Image) uint8 {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel:
		return 3
	default:
		return 4
	}
}

func flipVertically(img *image.NRGBA) {
	stride := img.Stride
	height := img.Rect.Dy()
	row := make([]uint8, stride)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(height-1-y)*stride : (height-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func stripAlpha(rgba []uint8) []uint8 {
	rgb := make([]uint8, 0, len(rgba)/4*3)
	for i := 0; i < len(rgba); i += 4 {
		rgb = append(rgb, rgba[i], rgba[i+1], rgba[i+2])
	}
	return rgb
}
