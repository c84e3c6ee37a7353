package favigen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/favigen/favigen/utils"
)

const (
	// hiResSize is the edge length of the intermediate render the icon
	// container is downsampled from.
	hiResSize = 256

	// DefaultIcoName is the output name of the packed icon container.
	DefaultIcoName = "favicon.ico"
)

// Processor holds the immutable configuration of a single pipeline run.
type Processor struct {
	// Sizes drives the standalone raster outputs, in insertion order.
	Sizes SizeSpec
	// IcoName overrides the packed container output name.
	IcoName string
	// OutDir is the directory the outputs are written into.
	OutDir string
	// Status receives one confirmation line per produced output.
	// It defaults to os.Stdout.
	Status io.Writer
	// Spinner used to instantiate and call the progress indicator.
	Spinner *utils.Spinner
}

// Process renders the vector source read from r into the standalone raster
// family, then packs the multi-resolution icon container. The outputs are
// written strictly in the size specification order, followed by the
// container. The first failure aborts the remainder of the run; the outputs
// already written are left in place.
func (p *Processor) Process(r io.Reader) error {
	if err := p.Sizes.Validate(); err != nil {
		return err
	}

	v, err := LoadVector(r)
	if err != nil {
		return err
	}

	for _, e := range p.Sizes {
		if err := p.renderEntry(v, e.Name, e.Size); err != nil {
			return err
		}
		p.printStatus(e.Name)
	}

	if err := p.packContainer(v); err != nil {
		return err
	}
	p.printStatus(p.icoName())

	return nil
}

// renderEntry rasterizes the vector at the requested dimension and persists
// the result under the entry name.
func (p *Processor) renderEntry(v *Vector, name string, size int) error {
	img := v.Rasterize(size)
	return writeImg(filepath.Join(p.OutDir, name), imgToNRGBA(img))
}

// packContainer renders the high resolution intermediate into a temporary
// file, reads it back and downsamples it into the container resolutions.
// The temporary file is removed unconditionally, failure included.
func (p *Processor) packContainer(v *Vector) error {
	tmp, err := os.CreateTemp("", "favigen-*.png")
	if err != nil {
		return &WriteError{Path: os.TempDir(), Err: err}
	}
	defer os.Remove(tmp.Name())

	hi := v.Rasterize(hiResSize)
	if err := encodeImg(tmp, imgToNRGBA(hi)); err != nil {
		tmp.Close()
		return &WriteError{Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: tmp.Name(), Err: err}
	}

	src, err := decodeImg(tmp.Name())
	if err != nil {
		return &PackError{Path: p.icoName(), Err: err}
	}

	out := filepath.Join(p.OutDir, p.icoName())
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &WriteError{Path: out, Err: err}
	}
	defer f.Close()

	if err := PackICO(src, f); err != nil {
		return &PackError{Path: out, Err: err}
	}
	return nil
}

// printStatus emits the confirmation line for a produced output file.
func (p *Processor) printStatus(name string) {
	w := p.Status
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Created %s%s\n",
		utils.DecorateText(name, utils.SuccessMessage),
		utils.DefaultColor,
	)
}

func (p *Processor) icoName() string {
	if p.IcoName == "" {
		return DefaultIcoName
	}
	return p.IcoName
}
