package led

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

const (
	Sim     = "sim"
	SPI     = "spi"
	Console = "console"

	// 800kHz WS281x bit rate, three SPI bits per data bit, plus headroom.
	DFLT_SPI_FREQ = 2500 * physic.KiloHertz
)

// Options selects and sizes the strip output.
type Options struct {
	Driver string
	Pixels int
	SPIDev string // "" picks the first registered port
	Freq   physic.Frequency
}

// Output is the drawer a strip shows on, plus whatever port backs it.
type Output struct {
	display.Drawer
	Kind string
	port spi.PortCloser
}

func (o *Output) Close() error {
	if o.port == nil {
		return nil
	}
	err := o.port.Close()
	o.port = nil
	return err
}

// Open builds the output named by opts.Driver. periph host drivers must be
// initialized first for spi. If the SPI port cannot be opened it falls back
// to the console.
func Open(opts Options) (*Output, error) {
	if opts.Pixels <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", opts.Pixels)
	}
	switch opts.Driver {
	case Sim, "":
		return &Output{Drawer: NewSimDrawer(opts.Pixels), Kind: Sim}, nil
	case Console:
		return &Output{Drawer: screen.New(opts.Pixels), Kind: Console}, nil
	case SPI:
		p, err := spireg.Open(opts.SPIDev)
		if err != nil {
			log.Warn().Err(err).
				Str("driver", SPI).
				Str("dev", opts.SPIDev).
				Msg("SPI open failed; printing at the console")
			return &Output{Drawer: screen.New(opts.Pixels), Kind: Console}, nil
		}
		d, err := NewSPIDrawer(p, opts.Pixels, opts.Freq)
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		return &Output{Drawer: d, Kind: SPI, port: p}, nil
	default:
		return nil, fmt.Errorf("unknown driver: %q", opts.Driver)
	}
}

// NewSPIDrawer drives a WS281x strip over an SPI port.
func NewSPIDrawer(p spi.Port, pixels int, freq physic.Frequency) (*nrzled.Dev, error) {
	if freq == 0 {
		freq = DFLT_SPI_FREQ
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	if err := d.Halt(); err != nil {
		return nil, fmt.Errorf("nrzled halt: %w", err)
	}
	return d, nil
}
