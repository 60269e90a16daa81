//go:build !gray4

package ili9341

import "periph.io/x/devices/v3/ili9341/pixelcolor"

// DefaultColor is the logical color type of New.
type DefaultColor = pixelcolor.RGB565
