/*
Package favigen converts a single SVG icon source into the family of raster assets
a web site's static pipeline needs: a set of square favicon images rendered at fixed
sizes and a multi-resolution favicon.ico container.

The package provides a command line interface, supporting various flags for altering
the generated asset family. To check the supported commands type:

	$ favigen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/favigen/favigen"
	)

	func main() {
		p := &favigen.Processor{
			Sizes:  favigen.DefaultSizes,
			OutDir: "public",
		}

		src, err := os.Open("favicon.svg")
		if err != nil {
			fmt.Printf("Error opening the vector source: %s", err.Error())
			return
		}
		defer src.Close()

		if err := p.Process(src); err != nil {
			fmt.Printf("Error generating the favicon assets: %s", err.Error())
		}
	}
*/
package favigen
