package favigen

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
)

// makeGradient fills a square image with a simple two axis gradient.
func makeGradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / size),
				G: uint8(y * 255 / size),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	return img
}

func TestIco_ShouldEmbedAllResolutions(t *testing.T) {
	var buf bytes.Buffer

	err := PackICO(makeGradient(hiResSize), &buf)
	assert.NoError(t, err)

	imgs, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	assert.Len(t, imgs, len(icoSizes))

	for i, size := range icoSizes {
		assert.Equal(t, size, imgs[i].Bounds().Dx())
		assert.Equal(t, size, imgs[i].Bounds().Dy())
	}
}

func TestIco_ShouldResampleNonMatchingSource(t *testing.T) {
	var buf bytes.Buffer

	// A source that matches none of the embedded resolutions still yields
	// the full, fixed resolution list.
	err := PackICO(makeGradient(100), &buf)
	assert.NoError(t, err)

	imgs, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	assert.Len(t, imgs, len(icoSizes))

	for i, size := range icoSizes {
		assert.Equal(t, size, imgs[i].Bounds().Dx())
		assert.Equal(t, size, imgs[i].Bounds().Dy())
	}
}
