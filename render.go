package favigen

import (
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/favigen/favigen/utils"
)

// Vector holds a parsed vector icon source, ready to be rasterized at
// arbitrary square dimensions.
type Vector struct {
	icon *oksvg.SvgIcon
}

// LoadVector parses the vector icon source read from r.
func LoadVector(r io.Reader) (*Vector, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return &Vector{icon: icon}, nil
}

// LoadVectorFile parses the vector icon source stored at path.
func LoadVectorFile(path string) (*Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RenderError{Path: path, Err: err}
	}
	defer f.Close()

	v, err := LoadVector(f)
	if err != nil {
		if re, ok := err.(*RenderError); ok {
			re.Path = path
		}
		return nil, err
	}
	return v, nil
}

// Rasterize renders the vector source into a square image of the requested
// dimension. The viewbox is scaled to fit the target square and centered,
// preserving the source aspect ratio. The produced pixels are purely a
// function of the source content and the requested size.
func (v *Vector) Rasterize(size int) *image.RGBA {
	w, h := v.icon.ViewBox.W, v.icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}

	scale := float64(size) / utils.Max(w, h)
	fw, fh := w*scale, h*scale
	v.icon.SetTarget((float64(size)-fw)/2, (float64(size)-fh)/2, fw, fh)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	v.icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return img
}
