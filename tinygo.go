//go:build tinygo

package tinygo_esc

import (
	"machine"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygopwm "github.com/ralvarezdev/tinygo-pwm"
)

type (
	// PWMOutput is the ChannelOutput over a TinyGo PWM peripheral.
	//
	// Duties are pulse widths in nanoseconds and the period is in nanoseconds too. The last duty
	// written to each channel is kept so it can be read back and re-applied.
	PWMOutput struct {
		pwm      tinygopwm.PWM
		period   uint32
		channels *channelDuties
	}

	// PWMPinOutput is the PinOutput over one channel of a PWMOutput
	PWMPinOutput struct {
		output  *PWMOutput
		channel uint8
	}
)

var (
	_ ChannelOutput = (*PWMOutput)(nil)
	_ PinOutput     = (*PWMPinOutput)(nil)
)

// NewPWMOutput creates a new instance of PWMOutput
//
// Parameters:
//
// pwm: The PWM peripheral
// frequency: Frequency for the PWM signal, 50Hz for most ESCs
//
// Returns:
//
// An instance of PWMOutput and an error if the peripheral could not be configured
func NewPWMOutput(
	pwm tinygopwm.PWM,
	frequency uint16,
) (*PWMOutput, tinygoerrors.ErrorCode) {
	if pwm == nil {
		return nil, ErrorCodeESCNilOutput
	}

	// Check if the frequency is zero
	if frequency == 0 {
		return nil, ErrorCodeESCZeroFrequency
	}

	output := &PWMOutput{
		pwm:      pwm,
		channels: newChannelDuties(),
	}
	period := 1e9 / float64(frequency)
	if err := output.SetPeriod(uint32(period)); err != tinygoerrors.ErrorCodeNil {
		return nil, err
	}
	return output, tinygoerrors.ErrorCodeNil
}

// Channel returns the channel of the given pin and marks it as enabled.
//
// Parameters:
//
// pin: The pin connected to the ESC signal line
//
// Returns:
//
// The channel and an error if the pin is not driven by this peripheral
func (o *PWMOutput) Channel(pin machine.Pin) (uint8, tinygoerrors.ErrorCode) {
	channel, err := o.pwm.Channel(pin)
	if err != nil {
		return 0, ErrorCodeESCFailedToGetPWMChannel
	}
	o.channels.enable(channel)
	return channel, tinygoerrors.ErrorCodeNil
}

// PinOutput returns the PinOutput of the given pin.
func (o *PWMOutput) PinOutput(pin machine.Pin) (*PWMPinOutput, tinygoerrors.ErrorCode) {
	channel, err := o.Channel(pin)
	if err != tinygoerrors.ErrorCodeNil {
		return nil, err
	}
	return &PWMPinOutput{output: o, channel: channel}, tinygoerrors.ErrorCodeNil
}

// Enable enables a channel and writes its last duty.
func (o *PWMOutput) Enable(channel uint8) tinygoerrors.ErrorCode {
	duty := o.channels.enable(channel)
	tinygopwm.SetDuty(o.pwm, channel, duty, o.period)
	return tinygoerrors.ErrorCodeNil
}

// Disable drives a channel low, keeping its last duty.
func (o *PWMOutput) Disable(channel uint8) tinygoerrors.ErrorCode {
	o.channels.disable(channel)
	tinygopwm.SetDuty(o.pwm, channel, 0, o.period)
	return tinygoerrors.ErrorCodeNil
}

// GetPeriod returns the PWM period in nanoseconds.
func (o *PWMOutput) GetPeriod() uint32 {
	return o.period
}

// SetPeriod reconfigures the peripheral and writes the duties of the enabled channels again.
//
// Parameters:
//
// period: The PWM period in nanoseconds
//
// Returns:
//
// An error if the period is zero or the peripheral could not be configured
func (o *PWMOutput) SetPeriod(period uint32) tinygoerrors.ErrorCode {
	if period == 0 {
		return ErrorCodeESCZeroPeriod
	}
	if err := o.pwm.Configure(
		machine.PWMConfig{
			Period: uint64(period),
		},
	); err != nil {
		return ErrorCodeESCFailedToConfigurePWM
	}
	o.period = period

	o.channels.eachEnabled(func(channel uint8, duty uint32) {
		tinygopwm.SetDuty(o.pwm, channel, duty, o.period)
	})
	return tinygoerrors.ErrorCodeNil
}

// GetDuty returns the last pulse width written to a channel.
func (o *PWMOutput) GetDuty(channel uint8) uint32 {
	return o.channels.get(channel)
}

// GetMaxDuty returns the longest representable pulse width, which is the period.
func (o *PWMOutput) GetMaxDuty() uint32 {
	return o.period
}

// SetDuty writes a pulse width to a channel. A disabled channel only stores it.
func (o *PWMOutput) SetDuty(channel uint8, duty uint32) tinygoerrors.ErrorCode {
	if o.channels.set(channel, duty) {
		tinygopwm.SetDuty(o.pwm, channel, duty, o.period)
	}
	return tinygoerrors.ErrorCodeNil
}

// NewPWMPinOutput creates a PWM output for a single pin
//
// Parameters:
//
// pwm: The PWM peripheral
// pin: The pin connected to the ESC signal line
// frequency: Frequency for the PWM signal
//
// Returns:
//
// An instance of PWMPinOutput and an error if the peripheral or the pin could not be configured
func NewPWMPinOutput(
	pwm tinygopwm.PWM,
	pin machine.Pin,
	frequency uint16,
) (*PWMPinOutput, tinygoerrors.ErrorCode) {
	output, err := NewPWMOutput(pwm, frequency)
	if err != tinygoerrors.ErrorCodeNil {
		return nil, err
	}
	return output.PinOutput(pin)
}

// Channel returns the channel the pin is driven by.
func (p *PWMPinOutput) Channel() uint8 {
	return p.channel
}

// Enable enables the pin.
func (p *PWMPinOutput) Enable() tinygoerrors.ErrorCode {
	return p.output.Enable(p.channel)
}

// Disable disables the pin.
func (p *PWMPinOutput) Disable() tinygoerrors.ErrorCode {
	return p.output.Disable(p.channel)
}

// GetDuty returns the last pulse width written to the pin.
func (p *PWMPinOutput) GetDuty() uint32 {
	return p.output.GetDuty(p.channel)
}

// GetMaxDuty returns the period of the peripheral.
func (p *PWMPinOutput) GetMaxDuty() uint32 {
	return p.output.GetMaxDuty()
}

// SetDuty writes a pulse width to the pin.
func (p *PWMPinOutput) SetDuty(duty uint32) tinygoerrors.ErrorCode {
	return p.output.SetDuty(p.channel, duty)
}
