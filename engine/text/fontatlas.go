package text

import (
	"fmt"
	"image"
	"os"

	"github.com/hubastard/oui/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a face rasterised into a single atlas texture.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  core.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
	closeFace                func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LoadFont rasterises the TTF at path, or the built-in Go Regular face when
// path is empty, and uploads its atlas.
func LoadFont(r core.Renderer, path string, sizePx float32) (*Font, error) {
	ttfData := goregular.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		ttfData = data
	}
	f, atlas, err := Rasterize(ttfData, sizePx)
	if err != nil {
		return nil, err
	}
	if err := f.Upload(r, atlas); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Upload sends the atlas built by Rasterize to the GPU.
func (f *Font) Upload(r core.Renderer, atlas *image.RGBA) error {
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: f.AtlasW, Height: f.AtlasH,
		Format:    core.TextureRGBA8,
		Pixels:    atlas.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	return nil
}

// Ellipsis ends labels cut by Ellipsize.
const Ellipsis = '…'

// printable Latin-1 plus the marks widgets draw
var uiRunes = []rune{Ellipsis, '•', '►', '▼'}

const (
	atlasPadding = 2
	atlasMin     = 256
	atlasMax     = 4096
)

// glyphBox is a glyph measured in whole pixels before packing.
type glyphBox struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

// Rasterize builds a white glyph atlas with alpha coverage for Latin-1 and
// the UI marks. The returned font has no texture until Upload.
func Rasterize(ttfData []byte, sizePx float32) (*Font, *image.RGBA, error) {
	if sizePx <= 0 {
		return nil, nil, fmt.Errorf("font size %v is not positive", sizePx)
	}
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("new face: %w", err)
	}

	boxes := measureGlyphs(face)
	size, pos, err := packShelves(boxes)
	if err != nil {
		_ = face.Close()
		return nil, nil, err
	}

	atlas := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: atlas, Src: image.White, Face: face}
	glyphs := make(map[rune]Glyph, len(boxes))
	for _, b := range boxes {
		g := Glyph{Rune: b.r, Advance: b.adv, BearingX: b.bx, BearingY: b.by, W: b.w, H: b.h}
		if p, ok := pos[b.r]; ok {
			// the dot sits on the baseline, left of the ink by the bearing
			drawer.Dot = fixed.P(p.X-int(b.bx), p.Y+int(b.by))
			drawer.DrawString(string(b.r))
			g.U0, g.V0 = float32(p.X)/float32(size), float32(p.Y)/float32(size)
			g.U1, g.V1 = float32(p.X+b.w)/float32(size), float32(p.Y+b.h)/float32(size)
		}
		glyphs[b.r] = g
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	return &Font{
		SizePx:    sizePx,
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   float32(m.Height.Round()) - ascent + descent,
		Glyphs:    glyphs,
		AtlasW:    size,
		AtlasH:    size,
		Face:      face,
		closeFace: func() { _ = face.Close() },
	}, atlas, nil
}

// measureGlyphs skips runes the face has no glyph for.
func measureGlyphs(face font.Face) []glyphBox {
	runes := make([]rune, 0, 224+len(uiRunes))
	for r := rune(32); r <= 255; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, uiRunes...)

	boxes := make([]glyphBox, 0, len(runes))
	for _, r := range runes {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		boxes = append(boxes, glyphBox{
			r:   r,
			w:   (b.Max.X - b.Min.X).Round(),
			h:   (b.Max.Y - b.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Round()),
			by:  float32(-b.Min.Y.Round()),
		})
	}
	return boxes
}

// packShelves places the inked boxes in rows on the smallest square atlas,
// doubling from atlasMin, that holds them all.
func packShelves(boxes []glyphBox) (int, map[rune]image.Point, error) {
	for size := atlasMin; size <= atlasMax; size *= 2 {
		if pos, ok := packInto(boxes, size); ok {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas larger than %d", atlasMax)
}

func packInto(boxes []glyphBox, size int) (map[rune]image.Point, bool) {
	pos := make(map[rune]image.Point, len(boxes))
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, b := range boxes {
		if b.w == 0 || b.h == 0 {
			continue
		}
		if x+b.w+atlasPadding > size {
			x, y, rowH = atlasPadding, y+rowH+atlasPadding, 0
		}
		if x+b.w+atlasPadding > size || y+b.h+atlasPadding > size {
			return nil, false
		}
		pos[b.r] = image.Pt(x, y)
		x += b.w + atlasPadding
		rowH = max(rowH, b.h)
	}
	return pos, true
}
