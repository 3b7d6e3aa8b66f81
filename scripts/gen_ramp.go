//go:build ignore

// gen_ramp.go – run with:
//
//	go run scripts/gen_ramp.go
//
// Writes testdata/ramp.png, a 256x64 grayscale ramp with a 16-step
// banded lower half. Feed it through the generated tables when
// eyeballing a preset against cmd/gammaview output.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	if err := os.MkdirAll("testdata", 0o755); err != nil {
		log.Fatal(err)
	}

	img := image.NewGray(image.Rect(0, 0, 256, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 256; x++ {
			v := uint8(x)
			if y >= 32 {
				// Quantised band, easier to spot crushed shadows.
				v = uint8((x / 16) * 16)
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	path := filepath.Join("testdata", "ramp.png")
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}
