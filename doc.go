// Package ili9341 controls an ILI9341 color LCD via SPI.
//
// The ILI9341 is a 240×320 TFT controller driven here in 16-bit (RGB 5-6-5)
// pixel mode. The package is split in two layers:
//
// - Dev talks to the controller: command/data framing over SPI, the address
// window and pixel streaming. It implements Controller.
//
// - DrawTarget paints logical colors onto any Controller, clipping to the
// panel and converting colors to the native 16-bit word.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	D/C         → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RESET       → Optional: GPIO for hardware reset
//	LED         → 3.3V or a GPIO for backlight control
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9341"
//		"periph.io/x/devices/v3/ili9341/pixelcolor"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := ili9341.NewSPI(spiBus, dcPin, &ili9341.Opts{BGR: true})
//		defer dev.Halt()
//
//		t := ili9341.NewDrawTarget[pixelcolor.RGB565](dev)
//		t.Clear(pixelcolor.Black)
//		t.FillSolid(image.Rect(20, 20, 120, 80), pixelcolor.Red)
//	}
//
// # Color Modes
//
// A DrawTarget is instantiated with its logical color type:
//
//	// Direct 5-6-5 colors
//	direct := ili9341.NewDrawTarget[pixelcolor.RGB565](dev)
//
//	// 4-bit palette indices (see pixelcolor for the palette)
//	indexed := ili9341.NewDrawTarget[pixelcolor.Gray4](dev)
//
// New picks the type at build time: RGB565 by default, Gray4 when built
// with -tags gray4.
//
// # Drawing Operations
//
// DrawPixels writes individually addressed pixels. Each visible pixel costs
// one address window and one data transfer; pixels outside the panel are
// dropped.
//
// FillArea streams a rectangle of colors in row-major order through a single
// address window. When the rectangle hangs off the panel, the window covers
// the visible part and the colors of hidden points are skipped.
//
// Clear fills the whole panel with one color.
//
// Draw copies an image.Image and makes DrawTarget a display.Drawer:
//
//	img := pixelcolor.NewIndexed4(image.Rect(0, 0, 64, 64))
//	// ... draw into img ...
//	indexed.Draw(image.Rect(10, 10, 74, 74), img, image.Point{})
//
// # TinyGo drawing helpers
//
// NewDisplayer wraps a DrawTarget as a tinygo.org/x/drivers.Displayer so
// libraries written against that interface can paint on the panel.
//
// # Concurrency
//
// Every operation blocks until the SPI transfers complete. Neither Dev nor
// DrawTarget is safe for concurrent use.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
//
// # Compatibility with periph.io
//
// DrawTarget implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
package ili9341
