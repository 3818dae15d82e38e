package tinygo_esc

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// PinOutput is the interface of a single PWM output driving one ESC signal line
	PinOutput interface {
		Enable() tinygoerrors.ErrorCode
		Disable() tinygoerrors.ErrorCode
		GetDuty() uint32
		GetMaxDuty() uint32
		SetDuty(duty uint32) tinygoerrors.ErrorCode
	}

	// ChannelOutput is the interface of a PWM peripheral with independently addressed channels
	ChannelOutput interface {
		Enable(channel uint8) tinygoerrors.ErrorCode
		Disable(channel uint8) tinygoerrors.ErrorCode
		GetPeriod() uint32
		SetPeriod(period uint32) tinygoerrors.ErrorCode
		GetDuty(channel uint8) uint32
		GetMaxDuty() uint32
		SetDuty(channel uint8, duty uint32) tinygoerrors.ErrorCode
	}

	// Delayer blocks the calling context for the given duration
	Delayer interface {
		Delay(d time.Duration)
	}

	// Handler is the interface to handle a single ESC (Electronic Speed Controller) output
	Handler interface {
		Arm() tinygoerrors.ErrorCode
		Disarm() tinygoerrors.ErrorCode
		SetMaxDuty() tinygoerrors.ErrorCode
		SetMinDuty() tinygoerrors.ErrorCode
		SetPreset(preset Preset) tinygoerrors.ErrorCode
		Calibrate(delay time.Duration, delayer Delayer) tinygoerrors.ErrorCode
	}

	// ChannelHandler is the interface to handle ESCs wired to the channels of one PWM peripheral
	ChannelHandler interface {
		ArmChannel(channel uint8) tinygoerrors.ErrorCode
		DisarmChannel(channel uint8) tinygoerrors.ErrorCode
		SetChannelMaxDuty(channel uint8) tinygoerrors.ErrorCode
		SetChannelMinDuty(channel uint8) tinygoerrors.ErrorCode
		SetChannelPreset(channel uint8, preset Preset) tinygoerrors.ErrorCode
		CalibrateChannels(
			delay time.Duration,
			delayer Delayer,
			channels []uint8,
		) tinygoerrors.ErrorCode
	}
)
