package favigen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImage_ShouldGetSampleVector(t *testing.T) {
	path := filepath.Join("testdata", "favicon.svg")
	if _, err := os.ReadFile(path); err != nil {
		t.Errorf("Should get the sample vector source")
	}
}

func TestImage_ImgToNRGBA(t *testing.T) {
	rect := image.Rect(-1, -1, 15, 15)
	testCases := []struct {
		name string
		img  image.Image
	}{
		{
			name: "NRGBA",
			img:  image.NewNRGBA(rect),
		},
		{
			name: "RGBA",
			img:  image.NewRGBA(rect),
		},
		{
			name: "YCbCr-444",
			img:  image.NewYCbCr(rect, image.YCbCrSubsampleRatio444),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := imgToNRGBA(tc.img)
			b := got.Bounds()
			if b.Min.X != 0 || b.Min.Y != 0 {
				t.Errorf("the converted image min-point should be (0, 0), got %v", b.Min)
			}
			if b.Dx() != rect.Dx() || b.Dy() != rect.Dy() {
				t.Errorf("the converted image should preserve the dimensions")
			}
		})
	}
}

func TestImage_EncodeDispatch(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xfa, G: 0xbd, B: 0x2f, A: 0xff})
		}
	}

	dir := t.TempDir()

	for _, name := range []string{"icon.png", "icon.jpg", "icon.bmp"} {
		path := filepath.Join(dir, name)
		if err := writeImg(path, img); err != nil {
			t.Fatalf("could not write %s: %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("could not reopen %s: %v", name, err)
		}
		cimg, _, err := image.Decode(f)
		f.Close()

		if err != nil {
			t.Fatalf("could not decode %s: %v", name, err)
		}
		if cimg.Bounds().Dx() != 8 || cimg.Bounds().Dy() != 8 {
			t.Errorf("%s should preserve the image dimensions", name)
		}
	}
}

func TestImage_UnsupportedExtension(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := filepath.Join(t.TempDir(), "icon.tiff")

	if err := writeImg(path, img); err == nil {
		t.Errorf("an unsupported extension should have been rejected")
	}
}

func TestImage_NonFileWriterDefaultsToPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	var buf bytes.Buffer
	if err := encodeImg(&buf, img); err != nil {
		t.Fatalf("could not encode to a plain writer: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("the default encoding should be PNG: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 4 {
		t.Errorf("unexpected encoded dimensions: %dx%d", cfg.Width, cfg.Height)
	}
}
