package colors

// WidgetTheme colours one kind of widget.
type WidgetTheme struct {
	Outline     Color
	Text        Color
	TextActive  Color
	Inner       Color
	InnerHot    Color
	InnerActive Color
	// drawn over the inner colour: slider fills, check marks
	Item Color
}

// Palette is the dark theme the demo hosts draw with.
type Palette struct {
	Background Color
	Label      Color
	Regular    WidgetTheme
	Tool       WidgetTheme
	Radio      WidgetTheme
	Option     WidgetTheme
	Slider     WidgetTheme
	// alpha applied to frozen subtrees
	DimAlpha float32
}

func DefaultPalette() Palette {
	regular := WidgetTheme{
		Outline:     MustHex("#191919"),
		Text:        Black,
		TextActive:  White,
		Inner:       MustHex("#999999"),
		InnerHot:    MustHex("#a8a8a8"),
		InnerActive: MustHex("#646464"),
		Item:        MustHex("#191919"),
	}
	radio := regular
	radio.Inner = MustHex("#464646")
	radio.InnerHot = MustHex("#555555")
	radio.InnerActive = MustHex("#5680c2")
	radio.Text = White

	option := regular
	option.Inner = MustHex("#464646")
	option.InnerHot = MustHex("#555555")
	option.InnerActive = MustHex("#464646")
	option.Text = White
	option.Item = White

	slider := regular
	slider.Inner = MustHex("#b4b4b4")
	slider.InnerHot = MustHex("#c3c3c3")
	slider.InnerActive = MustHex("#999999")
	slider.Item = MustHex("#808080")

	return Palette{
		Background: MustHex("#727272"),
		Label:      Black,
		Regular:    regular,
		Tool:       regular,
		Radio:      radio,
		Option:     option,
		Slider:     slider,
		DimAlpha:   0.5,
	}
}

// InnerFor picks the fill of w for the three live states.
func (w WidgetTheme) InnerFor(hot, active bool) Color {
	switch {
	case active:
		return w.InnerActive
	case hot:
		return w.InnerHot
	}
	return w.Inner
}
