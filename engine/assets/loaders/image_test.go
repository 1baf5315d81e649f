package loaders

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadFlipsRowsVertically(t *testing.T) {
	// 1x2 image: red on top, blue at the bottom
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := encodePNG(t, src)

	loader := &ImageLoader{FlipY: true}
	img, err := loader.Load(path)
	require.NoError(t, err)

	require.Equal(t, uint32(1), img.Width)
	require.Equal(t, uint32(2), img.Height)

	// after the flip the bottom row comes first
	stride := int(img.Width) * int(img.ChannelCount)
	assert.Equal(t, uint8(255), img.Pixels[2], "first row should be blue")
	assert.Equal(t, uint8(255), img.Pixels[stride], "second row should be red")
}

func TestLoadWithoutFlipKeepsRowOrder(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := encodePNG(t, src)

	loader := &ImageLoader{}
	img, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint8(255), img.Pixels[0], "first row should stay red")
}

func TestLoadReportsGrayAsSingleChannel(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	path := encodePNG(t, gray)

	loader := &ImageLoader{}
	img, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), img.ChannelCount)
}

func TestLoadPacksJPEGAsThreeChannels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, src, nil))
	require.NoError(t, f.Close())

	loader := &ImageLoader{}
	img, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint8(3), img.ChannelCount)
	assert.Len(t, img.Pixels, 4*2*3)
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	loader := &ImageLoader{}
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
