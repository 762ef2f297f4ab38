package theme

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/widget"
)

// IconCell is the pixel size of one cell of an icon sheet.
const IconCell = 16

// IconSheet is an uploaded grid of IconCell sized icons.
type IconSheet struct {
	Texture core.Texture
	W, H    int
}

// UploadIconSheet creates the texture of a sheet from RGBA8 pixels.
func UploadIconSheet(r core.Renderer, w, h int, pix []byte) (*IconSheet, error) {
	if w < IconCell || h < IconCell {
		return nil, fmt.Errorf("icon sheet %dx%d is smaller than one cell", w, h)
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "linear",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload icon sheet: %w", err)
	}
	return &IconSheet{Texture: tex, W: w, H: h}, nil
}

// Sub is the part of the sheet holding icon.
func (s *IconSheet) Sub(icon widget.Icon) renderer2d.SubTexture2D {
	x, y := icon.Cell()
	return renderer2d.FromGrid(s.Texture, x, y, IconCell, IconCell, s.W, s.H)
}

// DrawIconSheet rasterises a stand-in sheet of cols x rows white shapes, the
// shape of a cell picked from its position, for hosts without icon art.
func DrawIconSheet(cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*IconCell, rows*IconCell))
	white := color.RGBA{255, 255, 255, 255}
	const c = IconCell / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			shape := (cx + cy) % 3
			ox, oy := cx*IconCell, cy*IconCell
			for y := 2; y < IconCell-2; y++ {
				for x := 2; x < IconCell-2; x++ {
					dx, dy := x-c, y-c
					var in bool
					switch shape {
					case 0: // disc
						in = dx*dx+dy*dy <= 30
					case 1: // diamond
						in = abs(dx)+abs(dy) <= 6
					default: // frame
						in = x < 4 || y < 4 || x >= IconCell-4 || y >= IconCell-4
					}
					if in {
						img.SetRGBA(ox+x, oy+y, white)
					}
				}
			}
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
