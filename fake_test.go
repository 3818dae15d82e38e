package tinygo_esc

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	event struct {
		op      string
		channel uint8
		value   uint32
		delay   time.Duration
	}

	// recorder keeps the writes and waits seen by the fakes, in order.
	recorder struct {
		events []event
	}

	fakePin struct {
		rec     *recorder
		duty    uint32
		maxDuty uint32
		enabled bool
		fail    tinygoerrors.ErrorCode
	}

	fakeChannels struct {
		rec     *recorder
		duties  map[uint8]uint32
		enabled map[uint8]bool
		period  uint32
		maxDuty uint32
		failOn  map[uint8]bool
	}
)

func (r *recorder) Delay(d time.Duration) {
	r.events = append(r.events, event{op: "delay", delay: d})
}

func setEvent(value uint32) event {
	return event{op: "set", value: value}
}

func setChannelEvent(channel uint8, value uint32) event {
	return event{op: "set", channel: channel, value: value}
}

func delayEvent(d time.Duration) event {
	return event{op: "delay", delay: d}
}

func newFakePin() *fakePin {
	return &fakePin{rec: &recorder{}, maxDuty: 20000, enabled: true}
}

func (p *fakePin) Enable() tinygoerrors.ErrorCode {
	p.enabled = true
	p.rec.events = append(p.rec.events, event{op: "enable"})
	return tinygoerrors.ErrorCodeNil
}

func (p *fakePin) Disable() tinygoerrors.ErrorCode {
	p.enabled = false
	p.rec.events = append(p.rec.events, event{op: "disable"})
	return tinygoerrors.ErrorCodeNil
}

func (p *fakePin) GetDuty() uint32 {
	return p.duty
}

func (p *fakePin) GetMaxDuty() uint32 {
	return p.maxDuty
}

func (p *fakePin) SetDuty(duty uint32) tinygoerrors.ErrorCode {
	p.rec.events = append(p.rec.events, setEvent(duty))
	if p.fail != tinygoerrors.ErrorCodeNil {
		return p.fail
	}
	p.duty = duty
	return tinygoerrors.ErrorCodeNil
}

func newFakeChannels() *fakeChannels {
	return &fakeChannels{
		rec:     &recorder{},
		duties:  make(map[uint8]uint32),
		enabled: make(map[uint8]bool),
		period:  20000000,
		maxDuty: 65535,
		failOn:  make(map[uint8]bool),
	}
}

func (c *fakeChannels) Enable(channel uint8) tinygoerrors.ErrorCode {
	c.enabled[channel] = true
	c.rec.events = append(c.rec.events, event{op: "enable", channel: channel})
	return tinygoerrors.ErrorCodeNil
}

func (c *fakeChannels) Disable(channel uint8) tinygoerrors.ErrorCode {
	c.enabled[channel] = false
	c.rec.events = append(c.rec.events, event{op: "disable", channel: channel})
	return tinygoerrors.ErrorCodeNil
}

func (c *fakeChannels) GetPeriod() uint32 {
	return c.period
}

func (c *fakeChannels) SetPeriod(period uint32) tinygoerrors.ErrorCode {
	if period == 0 {
		return ErrorCodeESCZeroPeriod
	}
	c.period = period
	return tinygoerrors.ErrorCodeNil
}

func (c *fakeChannels) GetDuty(channel uint8) uint32 {
	return c.duties[channel]
}

func (c *fakeChannels) GetMaxDuty() uint32 {
	return c.maxDuty
}

func (c *fakeChannels) SetDuty(channel uint8, duty uint32) tinygoerrors.ErrorCode {
	c.rec.events = append(c.rec.events, setChannelEvent(channel, duty))
	if c.failOn[channel] {
		return ErrorCodeESCFailedToSetPWM
	}
	c.duties[channel] = duty
	return tinygoerrors.ErrorCodeNil
}
