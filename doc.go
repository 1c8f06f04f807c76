/*
Package quiltscan catalogues physical items, like quilt fabric swatches, by their color.

Each capture grabs a still frame from a webcam, crops it to a centered region, computes the
average hue, lightness and saturation of the cropped area and appends a record to a CSV ledger.
The captures are indexed by an auto-incrementing counter, which is also used to name the saved images.

The package provides a command line interface driven by single key presses. To check the supported flags type:

	$ quiltscan --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/esimov/quiltscan"
		"github.com/esimov/quiltscan/camera"
	)

	func main() {
		s, err := quiltscan.NewSession(quiltscan.Config{XCrop: 0.5, YCrop: 0.5, Dir: "."}, 1)
		if err != nil {
			log.Fatal(err)
		}
		s.Keys = quiltscan.NewKeyReader(os.Stdin, nil)
		s.Source = &camera.Webcam{Index: 0, Warmup: 10}

		if err := s.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package quiltscan
