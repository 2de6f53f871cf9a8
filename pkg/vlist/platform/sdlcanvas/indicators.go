package sdlcanvas

import (
	"fmt"
	"unsafe"

	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// arrow is an indicator texture rasterized from SVG artwork.
type arrow struct {
	texture *sdl.Texture
	rect    sdl.Rect
	alpha   uint8
}

func newArrow(renderer *sdl.Renderer, svg string, size int) (*arrow, error) {
	img, err := internal.RasterizeSVG(svg, size)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(size), int32(size), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("arrow surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("arrow texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return &arrow{texture: texture, rect: sdl.Rect{W: int32(size), H: int32(size)}}, nil
}

func (a *arrow) draw(renderer *sdl.Renderer, tint sdl.Color) {
	if a == nil || a.alpha == 0 {
		return
	}
	a.texture.SetColorMod(tint.R, tint.G, tint.B)
	a.texture.SetAlphaMod(a.alpha)
	renderer.Copy(a.texture, nil, &a.rect)
}

func (a *arrow) destroy() {
	if a != nil {
		a.texture.Destroy()
	}
}
