package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	ppmfilter "github.com/marprok/ppm-filter"
	"github.com/marprok/ppm-filter/utils"
)

const helpBanner = `
┌─┐┌─┐┌┬┐  ┌─┐┬┬ ┌┬┐┌─┐┬─┐
├─┘├─┘│││  ├┤ ││  │ ├┤ ├┬┘
┴  ┴  ┴ ┴  └  ┴┴─┘┴ └─┘┴└─

Content aware image width reduction.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", "", "Destination, defaults to <source>_new.ppm, use - for stdout")
	columns     = flag.Int("cols", 0, "Number of columns to remove")
	percentage  = flag.Bool("perc", false, "Interpret the column count as a percentage of the image width")
	prescale    = flag.Int("prescale", 0, "Rescale the image down to this width before carving")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *columns <= 0 {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide the number of columns (or the percentage) to remove!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	proc := &ppmfilter.Processor{
		Columns:       *columns,
		Percentage:    *percentage,
		PrescaleWidth: *prescale,
	}

	op := &ppmfilter.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}

	proc.Execute(op)
}
