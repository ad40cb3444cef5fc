/*
Package ppmfilter is a content aware image resize library. It shrinks the
source image horizontally by repeatedly removing the vertical seam which
contributes the least visual importance, so the image gets narrower
without visibly distorting its most salient content.

The package provides a command line interface, supporting various flags
for different types of rescaling operations. To check the supported
commands type:

	$ ppm-filter --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"

		ppmfilter "github.com/marprok/ppm-filter"
	)

	func main() {
		p := &ppmfilter.Processor{
			Columns: 120,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
		}
	}
*/
package ppmfilter
