package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/axon-term/axon"
	"github.com/axon-term/axon/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Output path; .png saves a quantized preview, .json exports lines, "+
			"anything else saves ANSI text (default: print to stdout)")
	width := flag.Int("width", 0,
		"Terminal columns to use (default: auto-detect)")
	border := flag.Bool("border", false,
		"Add a polaroid-style white border around the image")
	caption := flag.String("caption", "",
		"Caption text on the border (requires -border)")
	ditherMode := flag.String("dither", "none",
		"Dither mode: none, floyd, or ordered")
	posterLevels := flag.Int("poster", 0,
		"Posterization levels per channel, 0 to disable")
	filterName := flag.String("filter", "lanczos",
		"Resample filter: lanczos, bilinear, bicubic, or nearest")
	palettePath := flag.String("palette", "",
		"Path to a 16x16 swatch PNG restricting the output palette")
	scale := flag.Int("scale", 8,
		"Magnification factor for PNG preview output")
	compress := flag.Bool("compress", false,
		"Run-length compress the ANSI escape sequences")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	dither, err := axon.ParseDitherMode(*ditherMode)
	if err != nil {
		fatal(err)
	}
	filter, err := imageutil.ParseFilter(*filterName)
	if err != nil {
		fatal(err)
	}

	columns := *width
	if columns <= 0 {
		columns = terminalColumns()
	}

	opts := []axon.RendererOption{
		axon.WithWidth(columns),
		axon.WithDither(dither),
		axon.WithPosterize(*posterLevels),
		axon.WithFilter(filter),
	}
	if *border {
		opts = append(opts, axon.WithBorder())
	}
	if *caption != "" {
		opts = append(opts, axon.WithCaption(*caption))
	}
	if *palettePath != "" {
		table, err := axon.LoadRemapFile(*palettePath, axon.DefaultLUT())
		if err != nil {
			fatal(err)
		}
		opts = append(opts, axon.WithRemap(table))
	}

	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fatal(err)
	}

	renderer := axon.NewRenderer(opts...)

	if strings.HasSuffix(strings.ToLower(*outputFile), ".png") {
		preview, err := renderer.Preview(img, *scale)
		if err != nil {
			fatal(err)
		}
		if err := imageutil.SavePNG(preview, *outputFile); err != nil {
			fatal(err)
		}
		fmt.Printf("Preview written to %s\n", *outputFile)
		return
	}

	rendered, err := renderer.Render(img)
	if err != nil {
		fatal(err)
	}
	if *compress {
		rendered = axon.CompressANSI(rendered)
	}

	switch {
	case strings.HasSuffix(strings.ToLower(*outputFile), ".json"):
		lines := strings.Split(rendered, "\n")
		data, err := json.Marshal(struct {
			Width  int      `json:"width"`
			Height int      `json:"height"`
			Lines  []string `json:"lines"`
		}{Width: columns, Height: len(lines), Lines: lines})
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*outputFile, data, 0644); err != nil {
			fatal(err)
		}
		fmt.Printf("Export written to %s\n", *outputFile)
	case *outputFile != "":
		if err := os.WriteFile(*outputFile, []byte(rendered), 0644); err != nil {
			fatal(err)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
	default:
		fmt.Println(rendered)
	}
}

// terminalColumns returns the current terminal width, capped at 100
// columns, falling back to 80 when stdout is not a terminal.
func terminalColumns() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	if w > 100 {
		return 100
	}
	return w
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
