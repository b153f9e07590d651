package window

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Asset file names looked up in the assets directory.
const (
	CarFile     = "car.png"
	BarrierFile = "barrier.png"
	RoadFile    = "road.png"
)

// FontSize is the point size of all on-screen text.
const FontSize = 24

// Assets holds the images and font face the window draws with.
type Assets struct {
	Car     *ebiten.Image
	Barrier *ebiten.Image
	Road    *ebiten.Image
	Face    *text.GoTextFace
}

// LoadAssets reads the car, barrier and road images from dir and the font
// from fontPath. An empty fontPath selects the built-in Go Regular face.
func LoadAssets(dir, fontPath string) (*Assets, error) {
	src, err := loadFontSource(fontPath)
	if err != nil {
		return nil, err
	}

	a := &Assets{
		Face: &text.GoTextFace{Source: src, Size: FontSize},
	}
	for _, img := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{CarFile, &a.Car},
		{BarrierFile, &a.Barrier},
		{RoadFile, &a.Road},
	} {
		loaded, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, img.name))
		if err != nil {
			return nil, fmt.Errorf("load image %s: %w", img.name, err)
		}
		*img.dst = loaded
	}
	return a, nil
}

// loadFontSource parses a TTF/OTF file, or the built-in face when path
// is empty.
func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return src, nil
}
