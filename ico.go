package favigen

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// icoSizes lists the resolutions embedded into the packed icon container.
// The list is fixed and independent of the size specification used for the
// standalone outputs.
var icoSizes = []int{16, 32, 48, 256}

// PackICO builds a multi-resolution ICO container from the source image and
// writes it to w. Each embedded resolution is derived from src by Lanczos
// resampling, except when src already matches the requested dimension.
func PackICO(src image.Image, w io.Writer) error {
	imgs := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		b := src.Bounds()
		if b.Dx() == size && b.Dy() == size {
			imgs = append(imgs, src)
			continue
		}
		imgs = append(imgs, imaging.Resize(src, size, size, imaging.Lanczos))
	}
	return ico.EncodeAll(w, imgs)
}
