// Package pixelcolor provides the logical color types accepted by the ILI9341
// draw target and their conversion to the controller's native color word.
//
// The ILI9341 is driven in 16-bit-per-pixel mode, where each pixel is a
// 5-6-5 RGB word:
//
//	bit  15 ... 11 | 10 ... 5 | 4 ... 0
//	     red (5)   | green (6)| blue (5)
//
// Two logical color types are available:
//
// - RGB565: the direct encoding. Its bit pattern is the native word.
//
// - Gray4: a 4-bit index (0-15) into a fixed 16-entry palette of RGB565
// colors. It trades color depth for memory: an Indexed4 image stores two
// pixels per byte.
//
// Palette layout:
//
//	 0 black           8 purple
//	 1 dark slate gray 9 orange red
//	 2 yellow         10 dark red
//	 3 green          11 half yellow
//	 4 red            12 half green
//	 5 magenta        13 white
//	 6 cyan           14 white
//	 7 light gray     15 white
//
// Entries 13 to 15 are identical on purpose; all 16 indices are valid.
//
// Example usage:
//
//	// Native word of a direct color
//	w := pixelcolor.NewRGB565(31, 0, 0).Native() // 0xF800
//
//	// Native word of a palette index
//	w = pixelcolor.Gray4{Y: 2}.Native() // yellow, 0xFFE0
//
//	// Standard Go colors convert through the models
//	c := pixelcolor.Gray4Model.Convert(color.White).(pixelcolor.Gray4) // Y == 13
package pixelcolor
