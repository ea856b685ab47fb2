// Command cieplot renders the CIE 1976 u'v' chromaticity diagram to a PNG
// file.
//
// Usage:
//
//	cieplot [flags]
//
// Examples:
//
//	cieplot -out diagram.png
//	cieplot -samples 800 -out diagram.png
//	cieplot -xlim 0.65 -ylim 0.6 -size 8 -out zoomed.png
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"

	_ "github.com/cwbudde/algo-optics/colorimetry/observer"
	"github.com/cwbudde/algo-optics/plotting"
)

func main() {
	out := flag.String("out", "cie1976.png", "output PNG file")
	samples := flag.Int("samples", 400, "raster resolution per axis")
	xlim := flag.Float64("xlim", 0.7, "upper u' bound of the rendered region")
	ylim := flag.Float64("ylim", 0.7, "upper v' bound of the rendered region")
	size := flag.Float64("size", 6, "figure size in inches (square)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cieplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the CIE 1976 u'v' chromaticity diagram to a PNG file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cieplot -out diagram.png\n")
		fmt.Fprintf(os.Stderr, "  cieplot -samples 800 -xlim 0.65 -out diagram.png\n")
	}
	flag.Parse()

	p, err := plotting.CIE1976Diagram(nil,
		plotting.WithDiagramSamples(*samples),
		plotting.WithXLim(*xlim),
		plotting.WithYLim(*ylim),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p.Title.Text = "CIE 1976 u'v' Chromaticity Diagram"

	length := vg.Length(*size) * vg.Inch
	if err := p.Save(length, length, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to save %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%d x %d raster)\n", *out, *samples, *samples)
}
