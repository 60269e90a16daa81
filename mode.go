package ili9341

// New returns a DrawTarget for the color mode selected at build time: direct
// RGB565 colors by default, Gray4 palette indices with the gray4 build tag.
func New(ctrl Controller) *DrawTarget[DefaultColor] {
	return NewDrawTarget[DefaultColor](ctrl)
}
