// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// trayIcon renders the tray glyph at runtime so the binary ships without
// asset files. A plain filled square is enough for a demo.
func trayIcon() []byte {
	const size = 16
	bg := color.RGBA{R: 0x2e, G: 0x34, B: 0x36, A: 0xff}
	fg := color.RGBA{R: 0x72, G: 0x9f, B: 0xcf, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := bg
			if x >= 3 && x < size-3 && y >= 3 && y < size-3 {
				c = fg
			}
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}

	return buf.Bytes()
}
