package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// IndicatorAlpha returns the opacity of the up and down arrows for the item
// at index in a list of count items.
func IndicatorAlpha(index, count int) (up, down uint8) {
	if count <= 0 || index < 0 {
		return 0, 0
	}
	index = min(index, count-1)

	up = uint8(255 * float64(index+1) / float64(count))
	down = uint8(255 * (1 - float64(index)/float64(count)))
	return up, down
}

// RasterizeSVG renders an SVG document into a size x size RGBA image.
func RasterizeSVG(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}
