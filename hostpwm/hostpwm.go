// Package hostpwm drives an ESC from a Linux host through a periph.io PWM capable pin.
//
// Duties are pulse widths in nanoseconds. They are converted to a gpio.Duty fraction of the
// configured period before being written to the pin.
package hostpwm

import (
	"fmt"
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	tinygoesc "github.com/ralvarezdev/tinygo-esc"
)

// Output is a tinygo_esc.PinOutput over a gpio.PinOut.
type Output struct {
	pin     gpio.PinOut
	period  time.Duration
	duty    uint32
	enabled bool
	lastErr error
}

var _ tinygoesc.PinOutput = (*Output)(nil)

// New returns an Output driving pin at the given period.
//
// The pin is considered enabled but nothing is written until the first SetDuty.
func New(pin gpio.PinOut, period time.Duration) (*Output, error) {
	if pin == nil {
		return nil, fmt.Errorf("hostpwm: nil pin")
	}
	if period <= 0 {
		return nil, fmt.Errorf("hostpwm: invalid period %s", period)
	}
	if period.Nanoseconds() > int64(^uint32(0)) {
		return nil, fmt.Errorf("hostpwm: period %s does not fit in the duty range", period)
	}
	return &Output{pin: pin, period: period, enabled: true}, nil
}

// Period returns the PWM period.
func (o *Output) Period() time.Duration {
	return o.period
}

// Frequency returns the PWM frequency derived from the period.
func (o *Output) Frequency() physic.Frequency {
	return physic.Hertz * physic.Frequency(time.Second) / physic.Frequency(o.period)
}

// LastError returns the error of the last failed pin operation, if any.
func (o *Output) LastError() error {
	return o.lastErr
}

// Enable writes the stored duty to the pin again.
func (o *Output) Enable() tinygoerrors.ErrorCode {
	o.enabled = true
	return o.write(o.duty)
}

// Disable drives the pin low. The stored duty is kept for Enable.
func (o *Output) Disable() tinygoerrors.ErrorCode {
	o.enabled = false
	if err := o.pin.Out(gpio.Low); err != nil {
		o.lastErr = fmt.Errorf("hostpwm: %w", err)
		return tinygoesc.ErrorCodeESCFailedToSetPinOut
	}
	return tinygoerrors.ErrorCodeNil
}

// GetDuty returns the last pulse width written, in nanoseconds.
func (o *Output) GetDuty() uint32 {
	return o.duty
}

// GetMaxDuty returns the period in nanoseconds.
func (o *Output) GetMaxDuty() uint32 {
	return uint32(o.period.Nanoseconds())
}

// SetDuty stores the pulse width and writes it if the pin is enabled.
func (o *Output) SetDuty(duty uint32) tinygoerrors.ErrorCode {
	o.duty = duty
	if !o.enabled {
		return tinygoerrors.ErrorCodeNil
	}
	return o.write(duty)
}

func (o *Output) write(duty uint32) tinygoerrors.ErrorCode {
	if err := o.pin.PWM(o.toDuty(duty), o.Frequency()); err != nil {
		o.lastErr = fmt.Errorf("hostpwm: %w", err)
		return tinygoesc.ErrorCodeESCFailedToSetPWM
	}
	return tinygoerrors.ErrorCodeNil
}

// toDuty converts a pulse width to a fraction of gpio.DutyMax. Pulses longer than the period
// saturate at gpio.DutyMax.
func (o *Output) toDuty(duty uint32) gpio.Duty {
	period := uint64(o.period.Nanoseconds())
	if uint64(duty) >= period {
		return gpio.DutyMax
	}
	return gpio.Duty(uint64(duty) * uint64(gpio.DutyMax) / period)
}

func (o *Output) String() string {
	return fmt.Sprintf("hostpwm{%s, %s}", o.pin, o.period)
}
