package text

import "github.com/hubastard/oui/engine/gfx/renderer2d"

// advance is the pen step from prev to r, kerning included. Runes missing
// from the atlas step like a space.
func (f *Font) advance(prev, r rune) float32 {
	var adv float32
	if g, ok := f.Glyphs[r]; ok {
		adv = g.Advance
	} else if sp, ok := f.Glyphs[' ']; ok {
		adv = sp.Advance
	}
	if prev >= 0 && f.Face != nil {
		adv += float32(f.Face.Kern(prev, r)) / 64
	}
	return adv
}

// DrawText draws s with its first line's top-left at x,y. Y points down.
func DrawText(r2d *renderer2d.Renderer2D, font *Font, x, y float32, s string, color [4]float32) {
	penX, baseY := x, y+font.Ascent
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(font)
			prev = -1
			continue
		}
		if prev >= 0 && font.Face != nil {
			penX += float32(font.Face.Kern(prev, r)) / 64
		}
		if g, ok := font.Glyphs[r]; ok && g.W > 0 {
			r2d.DrawRectUV(penX+g.BearingX, baseY-g.BearingY, float32(g.W), float32(g.H), font.Texture, color, g.U0, g.V0, g.U1, g.V1)
		}
		// kerning was applied above
		penX += font.advance(-1, r)
		prev = r
	}
}

// MeasureText returns the extent of s, scaled from the atlas size to size.
func MeasureText(font *Font, s string, size float32) (width, height float32) {
	var lineW float32
	prev := rune(-1)
	height = LineHeight(font)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += LineHeight(font)
			prev = -1
			continue
		}
		lineW += font.advance(prev, r)
		prev = r
	}
	width = max(width, lineW)
	scale := size / font.SizePx
	return width * scale, height * scale
}

// Truncate returns the longest prefix of s no wider than maxW.
func Truncate(font *Font, s string, maxW float32) string {
	var w float32
	prev := rune(-1)
	for i, r := range s {
		adv := font.advance(prev, r)
		if w+adv > maxW {
			return s[:i]
		}
		w += adv
		prev = r
	}
	return s
}

// Ellipsize is Truncate for labels: a cut string ends with Ellipsis when the
// font has it and it fits.
func Ellipsize(font *Font, s string, maxW float32) string {
	if w, _ := MeasureText(font, s, font.SizePx); w <= maxW {
		return s
	}
	g, ok := font.Glyphs[Ellipsis]
	if !ok || g.Advance > maxW {
		return Truncate(font, s, maxW)
	}
	return Truncate(font, s, maxW-g.Advance) + string(Ellipsis)
}

func LineHeight(font *Font) float32 { return font.Ascent - font.Descent + font.LineGap }
