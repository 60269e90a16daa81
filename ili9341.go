package ili9341

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Command bytes used outside of the initialization sequence.
const (
	cmdSoftReset  = 0x01
	cmdSleepIn    = 0x10
	cmdSleepOut   = 0x11
	cmdInvertOff  = 0x20
	cmdInvertOn   = 0x21
	cmdDisplayOff = 0x28
	cmdDisplayOn  = 0x29
	cmdColumnAddr = 0x2A
	cmdPageAddr   = 0x2B
	cmdMemWrite   = 0x2C
	cmdMemAccess  = 0x36
	cmdPixelFmt   = 0x3A
)

const (
	panelWidth  = 240
	panelHeight = 320

	// defaultMaxTx is the pixel data chunk size in bytes when the
	// connection does not report a limit.
	defaultMaxTx = 4096
)

var errHalted = errors.New("ili9341: halted")

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 240, must be ≤240)
	H int // Height (default: 320, must be ≤320)

	// SPI clock (default: 10MHz)
	Hz physic.Frequency

	// BGR selects blue-green-red subpixel order, used by most ILI9341 modules.
	BGR bool

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the ILI9341 display.
//
// It implements Controller.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	w, h uint16

	// Pixel data staging buffer, capacity is the largest transfer size
	buf []byte

	// State
	halted bool
}

// NewSPI creates a new ILI9341 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (240x320 display, 10MHz).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	o, err := checkOpts(opts)
	if err != nil {
		return nil, err
	}

	// The ILI9341 accepts writes up to ~10MHz on its serial interface;
	// many modules run reliably faster.
	c, err := p.Connect(o.Hz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := newDev(c, dc, &o)
	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// checkOpts applies defaults to opts and validates it.
func checkOpts(opts *Opts) (Opts, error) {
	o := Opts{W: panelWidth, H: panelHeight}
	if opts != nil {
		o = *opts
	}
	if o.Hz == 0 {
		o.Hz = 10 * physic.MegaHertz
	}
	if o.W <= 0 || o.W > panelWidth {
		return o, errors.New("ili9341: width must be between 1 and 240")
	}
	if o.H <= 0 || o.H > panelHeight {
		return o, errors.New("ili9341: height must be between 1 and 320")
	}
	return o, nil
}

// newDev returns a Dev for an established connection. It does not talk to
// the display.
func newDev(c conn.Conn, dc gpio.PinOut, o *Opts) *Dev {
	maxTx := defaultMaxTx
	if l, ok := c.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 && n < maxTx {
			maxTx = n
		}
	}
	// Keep both bytes of a color word in the same transfer.
	maxTx &^= 1
	if maxTx == 0 {
		maxTx = 2
	}
	return &Dev{
		c:   c,
		dc:  dc,
		rst: o.RST,
		w:   uint16(o.W),
		h:   uint16(o.H),
		buf: make([]byte, 0, maxTx),
	}
}

// initCmd is one command of the initialization sequence.
type initCmd struct {
	cmd  byte
	args []byte
}

// powerOnSequence configures power, timing and gamma after reset.
var powerOnSequence = []initCmd{
	{0xEF, []byte{0x03, 0x80, 0x02}},             // Undocumented, required by some panels
	{0xCF, []byte{0x00, 0xC1, 0x30}},             // Power control B
	{0xED, []byte{0x64, 0x03, 0x12, 0x81}},       // Power on sequence control
	{0xE8, []byte{0x85, 0x00, 0x78}},             // Driver timing control A
	{0xCB, []byte{0x39, 0x2C, 0x00, 0x34, 0x02}}, // Power control A
	{0xF7, []byte{0x20}},                         // Pump ratio control
	{0xEA, []byte{0x00, 0x00}},                   // Driver timing control B
	{0xC0, []byte{0x23}},                         // Power control 1 (4.60V)
	{0xC1, []byte{0x10}},                         // Power control 2
	{0xC5, []byte{0x3E, 0x28}},                   // VCOM control 1
	{0xC7, []byte{0x86}},                         // VCOM control 2
	{0x37, []byte{0x00}},                         // Vertical scroll start address
	{0xB1, []byte{0x00, 0x18}},                   // Frame rate (79Hz)
	{0xB6, []byte{0x08, 0x82, 0x27}},             // Display function control
	{0xF2, []byte{0x00}},                         // 3-gamma off
	{0x26, []byte{0x01}},                         // Gamma curve 1
	{0xE0, []byte{ // Positive gamma correction
		0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1,
		0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00,
	}},
	{0xE1, []byte{ // Negative gamma correction
		0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1,
		0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F,
	}},
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		// Hardware reset: hold RST low for at least 10µs, then allow 120ms
		// before sending commands.
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9341: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9341: failed to pull RST high: %w", err)
		}
		time.Sleep(120 * time.Millisecond)
	} else {
		if err := d.sendCommand(cmdSoftReset); err != nil {
			return err
		}
		time.Sleep(150 * time.Millisecond)
	}

	for _, c := range powerOnSequence {
		if err := d.sendCommand(c.cmd, c.args...); err != nil {
			return err
		}
	}

	// Memory access control: mirror columns so x grows left to right
	madctl := byte(0x40)
	if opts.BGR {
		madctl |= 0x08
	}
	if err := d.sendCommand(cmdMemAccess, madctl); err != nil {
		return err
	}
	// 16 bits per pixel on both the MCU and RGB interfaces
	if err := d.sendCommand(cmdPixelFmt, 0x55); err != nil {
		return err
	}

	if err := d.sendCommand(cmdSleepOut); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	return d.sendCommand(cmdDisplayOn)
}

// sendCommand sends a command byte followed by its parameters.
func (d *Dev) sendCommand(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return d.sendData(args)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// Width returns the display width in pixels.
func (d *Dev) Width() uint16 {
	return d.w
}

// Height returns the display height in pixels.
func (d *Dev) Height() uint16 {
	return d.h
}

// SetWindow sets the column and page address window to the inclusive
// rectangle (x0, y0)-(x1, y1) and starts a memory write.
func (d *Dev) SetWindow(x0, y0, x1, y1 uint16) error {
	if d.halted {
		return errHalted
	}
	if x0 > x1 || y0 > y1 || x1 >= d.w || y1 >= d.h {
		return errors.New("ili9341: window out of range")
	}
	if err := d.sendCommand(cmdColumnAddr, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.sendCommand(cmdPageAddr, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.sendCommand(cmdMemWrite)
}

// WriteColors streams color words into the current window, most
// significant byte first.
func (d *Dev) WriteColors(colors iter.Seq[uint16]) error {
	if d.halted {
		return errHalted
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	buf := d.buf[:0]
	for c := range colors {
		buf = append(buf, byte(c>>8), byte(c))
		if len(buf) == cap(buf) {
			if err := d.c.Tx(buf, nil); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return d.c.Tx(buf, nil)
}

// ClearScreen fills the whole display with c.
func (d *Dev) ClearScreen(c uint16) error {
	if err := d.SetWindow(0, 0, d.w-1, d.h-1); err != nil {
		return err
	}
	n := int(d.w) * int(d.h)
	return d.WriteColors(func(yield func(uint16) bool) {
		for range n {
			if !yield(c) {
				return
			}
		}
	})
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(cmdInvertOff)
	if invert {
		cmd = cmdInvertOn
	}
	return d.sendCommand(cmd)
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.sendCommand(cmdDisplayOff); err != nil {
		return err
	}
	return d.sendCommand(cmdSleepIn)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%dx%d}", d.w, d.h)
}

var _ Controller = (*Dev)(nil)
var _ conn.Resource = (*Dev)(nil)
