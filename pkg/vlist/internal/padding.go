package internal

// Padding defines spacing on all four sides of a row's label.
type Padding struct {
	Top    int32 `toml:"top" yaml:"top"`
	Right  int32 `toml:"right" yaml:"right"`
	Bottom int32 `toml:"bottom" yaml:"bottom"`
	Left   int32 `toml:"left" yaml:"left"`
}

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}
