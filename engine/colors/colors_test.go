package colors

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"#000", Black},
		{"ff0000", Red},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) accepted", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#5680c2", "#191919", "#00ff0080"} {
		if got := MustHex(s).Hex(); got != s {
			t.Errorf("MustHex(%q).Hex() = %q", s, got)
		}
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		name   string
		c      Color
		amount float32
		want   Color
	}{
		{"lighten", Color{0, 0.5, 1, 1}, 0.5, Color{0.5, 0.75, 1, 1}},
		{"darken", Color{0, 0.5, 1, 0.5}, -0.5, Color{0, 0.25, 0.5, 0.5}},
		{"clamped", Gray, 3, White},
		{"none", Gray, 0, Gray},
	}
	for _, tt := range tests {
		if got := tt.c.Shade(tt.amount); got != tt.want {
			t.Errorf("%s: Shade = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInnerFor(t *testing.T) {
	p := DefaultPalette()
	w := p.Radio
	tests := []struct {
		hot, active bool
		want        Color
	}{
		{false, false, w.Inner},
		{true, false, w.InnerHot},
		{false, true, w.InnerActive},
		{true, true, w.InnerActive},
	}
	for _, tt := range tests {
		if got := w.InnerFor(tt.hot, tt.active); got != tt.want {
			t.Errorf("InnerFor(%t, %t) = %v, want %v", tt.hot, tt.active, got, tt.want)
		}
	}
}
