package conn

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// GPIO16 is a parallel port driven by discrete GPIO pins.
//
// Only the data lines that differ from the previous word are driven, the word
// is latched by the controller on the rising edge of WR.
type GPIO16 struct {
	data    [Width]gpio.PinOut
	wr      gpio.PinOut
	dc      gpio.PinOut
	dcLevel gpio.Level
	last    uint16
	primed  bool
}

// NewGPIO16 configures the pins of a GPIO parallel port. data[0] is D0.
func NewGPIO16(data [Width]gpio.PinOut, wr, dc gpio.PinOut) (*GPIO16, error) {
	for i, p := range data {
		if !validPin(p) {
			return nil, fmt.Errorf("%w: D%d", ErrPin, i)
		}
	}
	if !validPin(wr) {
		return nil, fmt.Errorf("%w: WR", ErrPin)
	}
	if !validPin(dc) {
		return nil, fmt.Errorf("%w: DC", ErrPin)
	}

	p := &GPIO16{
		data:    data,
		wr:      wr,
		dc:      dc,
		dcLevel: gpio.High,
	}
	if err := p.wr.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := p.dc.Out(p.dcLevel); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *GPIO16) String() string {
	return fmt.Sprintf("GPIO16 D0=%s WR=%s DC=%s", p.data[0], p.wr, p.dc)
}

// Close does nothing, the pins are owned by the caller.
func (p *GPIO16) Close() error {
	return nil
}

func (p *GPIO16) Tx(dc gpio.Level, words []uint16) (err error) {
	if p.dcLevel != dc {
		if err = p.dc.Out(dc); err != nil {
			return
		}
		p.dcLevel = dc
	}
	for _, word := range words {
		if err = p.write(word); err != nil {
			return
		}
	}
	return
}

func (p *GPIO16) write(word uint16) (err error) {
	changed := word ^ p.last
	if !p.primed {
		changed = 0xffff
	}
	for i, pin := range p.data {
		if changed&(1<<i) == 0 {
			continue
		}
		if err = pin.Out(gpio.Level(word&(1<<i) != 0)); err != nil {
			p.primed = false
			return
		}
	}
	p.last, p.primed = word, true

	if err = p.wr.Out(gpio.Low); err != nil {
		return
	}
	return p.wr.Out(gpio.High)
}
