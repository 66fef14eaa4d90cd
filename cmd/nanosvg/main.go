// nanosvg reduces an SVG document to the restricted "nano-SVG" dialect:
// absolute-only path data, no groups, no strokes, no clip-paths, gradients
// collected under a single <defs>.
//
// Usage:
//
//	go run ./cmd/nanosvg -in icon.svg -out icon.nano.svg
//	go run ./cmd/nanosvg -in icon.svg -apply-transforms
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ulgerang/nanosvg/canon"
	"github.com/ulgerang/nanosvg/svgdom"
)

var (
	inPath          = flag.String("in", "", "Path to the input SVG file (default stdin)")
	outPath         = flag.String("out", "", "Path to write the nano-SVG output (default stdout)")
	applyTransforms = flag.Bool("apply-transforms", false, "Bake ancestor transforms into shape geometry before canonicalizing")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	root, err := svgdom.Parse(in)
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}
	doc := svgdom.NewDoc(root)

	if *applyTransforms {
		if err := canon.ApplyTransforms(doc); err != nil {
			return fmt.Errorf("apply transforms: %w", err)
		}
	}
	if err := canon.ToNanoSVG(doc); err != nil {
		return fmt.Errorf("canonicalize: %w", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(svgdom.Serialize(doc.Root)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
