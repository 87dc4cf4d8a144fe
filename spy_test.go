package rm68120

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// transaction is one recorded bus transaction.
type transaction struct {
	command bool
	words   []uint16
}

// spyConn records every transaction and can fail on the n-th one.
type spyConn struct {
	tx     []transaction
	failAt int // 1-based transaction number, 0 never fails
	err    error
}

func (c *spyConn) record(command bool, words []uint16) error {
	if c.failAt > 0 && len(c.tx)+1 == c.failAt {
		c.failAt = 0
		return c.err
	}
	c.tx = append(c.tx, transaction{command: command, words: append([]uint16(nil), words...)})
	return nil
}

func (c *spyConn) Command(cmnd uint16) error {
	return c.record(true, []uint16{cmnd})
}

func (c *spyConn) Data(data ...uint16) error {
	return c.record(false, data)
}

// commands returns the recorded command codes in order.
func (c *spyConn) commands() (cmds []Command) {
	for _, t := range c.tx {
		if t.command {
			cmds = append(cmds, Command(t.words[0]))
		}
	}
	return
}

func (c *spyConn) reset() {
	c.tx = nil
}

// resetConn is a spyConn with a reset line.
type resetConn struct {
	spyConn
	levels   []gpio.Level
	resetErr error
}

func (c *resetConn) Reset(level gpio.Level) error {
	if c.resetErr != nil {
		return c.resetErr
	}
	c.levels = append(c.levels, level)
	return nil
}

// spyDelay records the requested delays.
type spyDelay struct {
	delays []time.Duration
}

func (d *spyDelay) Delay(v time.Duration) {
	d.delays = append(d.delays, v)
}

func (d *spyDelay) total() (sum time.Duration) {
	for _, v := range d.delays {
		sum += v
	}
	return
}

func newTestDisplay(config *Config) (*Display, *spyConn, *spyDelay) {
	c, delay := new(spyConn), new(spyDelay)
	return New(c, delay, config), c, delay
}
