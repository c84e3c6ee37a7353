package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/favigen/favigen"
	"github.com/favigen/favigen/utils"
)

const HelpBanner = `
┌─┐┌─┐┬  ┬┬┌─┐┌─┐┌┐┌
├┤ ├─┤└┐┌┘││ ┬├┤ │││
└  ┴ ┴ └┘ ┴└─┘└─┘┘└┘

Favicon and icon container generator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source  = flag.String("in", "favicon.svg", "Vector source (file path, URL or - for a stdin pipe)")
	outdir  = flag.String("out", ".", "Output directory")
	sizes   = flag.String("sizes", "", "Size specification override (name:size[,name:size...])")
	icoName = flag.String("ico", favigen.DefaultIcoName, "Packed icon container name")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	spec := favigen.DefaultSizes
	if *sizes != "" {
		var err error
		spec, err = favigen.ParseSizeSpec(*sizes)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Invalid size specification: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	proc := &favigen.Processor{
		Sizes:   spec,
		IcoName: *icoName,
	}

	proc.Execute(&favigen.Ops{
		Src:      *source,
		Dst:      *outdir,
		PipeName: pipeName,
	})
}
