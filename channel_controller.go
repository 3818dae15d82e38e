package tinygo_esc

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygologger "github.com/ralvarezdev/tinygo-logger"
)

type (
	// ChannelController drives ESCs wired to the channels of one PWM peripheral.
	//
	// The duty envelope is shared by all the channels.
	ChannelController struct {
		Duties
		output ChannelOutput
		logger tinygologger.Logger
	}
)

var (
	_ ChannelOutput  = (*ChannelController)(nil)
	_ ChannelHandler = (*ChannelController)(nil)
)

// NewChannelController creates a new instance of ChannelController
//
// The output must already be configured and running at its period, and the caller enables the
// channels it uses. Nothing is written to the output here.
//
// Parameters:
//
// output: The PWM peripheral the ESCs are connected to
// logger: The logger to log messages, it can be nil
//
// Returns:
//
// An instance of ChannelController and an error if the output is nil
func NewChannelController(
	output ChannelOutput,
	logger tinygologger.Logger,
) (*ChannelController, tinygoerrors.ErrorCode) {
	if output == nil {
		return nil, ErrorCodeESCNilOutput
	}
	return &ChannelController{
		output: output,
		logger: logger,
	}, tinygoerrors.ErrorCodeNil
}

// Output returns the wrapped PWM peripheral.
func (c *ChannelController) Output() ChannelOutput {
	return c.output
}

// Enable enables a channel.
func (c *ChannelController) Enable(channel uint8) tinygoerrors.ErrorCode {
	return c.output.Enable(channel)
}

// Disable disables a channel.
func (c *ChannelController) Disable(channel uint8) tinygoerrors.ErrorCode {
	return c.output.Disable(channel)
}

// GetPeriod returns the PWM period reported by the output.
func (c *ChannelController) GetPeriod() uint32 {
	return c.output.GetPeriod()
}

// SetPeriod sets the PWM period of the output.
func (c *ChannelController) SetPeriod(period uint32) tinygoerrors.ErrorCode {
	logUint32(c.logger, setPeriodPrefix, period)
	return c.output.SetPeriod(period)
}

// GetDuty returns the duty reported by the output for a channel, not bounded by the envelope.
func (c *ChannelController) GetDuty(channel uint8) uint32 {
	return c.output.GetDuty(channel)
}

// GetMaxDuty returns the maximum duty the output can represent.
func (c *ChannelController) GetMaxDuty() uint32 {
	return c.output.GetMaxDuty()
}

// SetDuty clamps the duty into the envelope and writes it to a channel.
//
// Parameters:
//
// channel: The channel to write
// duty: The requested duty
//
// Returns:
//
// The error code reported by the output
func (c *ChannelController) SetDuty(channel uint8, duty uint32) tinygoerrors.ErrorCode {
	clamped := c.Clamp(duty)
	if clamped != duty {
		logUint32(c.logger, clampedDutyPrefix, duty)
	}
	logUint32(c.logger, setChannelPrefix, uint32(channel))
	logUint32(c.logger, setDutyPrefix, clamped)
	return c.output.SetDuty(channel, clamped)
}

// ArmChannel writes the arm duty to a channel.
func (c *ChannelController) ArmChannel(channel uint8) tinygoerrors.ErrorCode {
	return c.SetDuty(channel, c.ArmDuty)
}

// DisarmChannel writes the disarm duty to a channel.
//
// Returns:
//
// ErrorCodeESCDisarmDutyNotConfigured without writing anything if no disarm duty was set,
// otherwise the error code reported by the output
func (c *ChannelController) DisarmChannel(channel uint8) tinygoerrors.ErrorCode {
	return c.SetChannelPreset(channel, PresetDisarm)
}

// StopChannel is an alias of DisarmChannel.
func (c *ChannelController) StopChannel(channel uint8) tinygoerrors.ErrorCode {
	return c.DisarmChannel(channel)
}

// SetChannelMaxDuty writes the max duty to a channel.
func (c *ChannelController) SetChannelMaxDuty(channel uint8) tinygoerrors.ErrorCode {
	return c.SetDuty(channel, c.MaxDuty)
}

// SetChannelMinDuty writes the min duty to a channel.
func (c *ChannelController) SetChannelMinDuty(channel uint8) tinygoerrors.ErrorCode {
	return c.SetDuty(channel, c.MinDuty)
}

// SetChannelPreset writes the stored duty of the given preset to a channel.
//
// Parameters:
//
// channel: The channel to write
// preset: The preset to write
//
// Returns:
//
// An error if the preset is unknown or not configured, otherwise the error code reported by the output
func (c *ChannelController) SetChannelPreset(
	channel uint8,
	preset Preset,
) tinygoerrors.ErrorCode {
	duty, err := c.presetDuty(preset)
	if err != tinygoerrors.ErrorCodeNil {
		if err == ErrorCodeESCDisarmDutyNotConfigured {
			logMessage(c.logger, disarmNotConfiguredPrefix)
		}
		return err
	}
	return c.SetDuty(channel, duty)
}

// CalibrateChannels teaches the ESCs on the given channels their throttle range.
//
// Every channel is driven to the max duty before the first delay and to the min duty before the
// second one. An empty channel list only runs the two delays. It stops at the first write that
// fails.
//
// Parameters:
//
// delay: How long each extreme is held
// delayer: The delayer used to block between phases
// channels: The channels to calibrate
//
// Returns:
//
// An error if the delayer is nil or a write failed, otherwise ErrorCodeNil
func (c *ChannelController) CalibrateChannels(
	delay time.Duration,
	delayer Delayer,
	channels []uint8,
) tinygoerrors.ErrorCode {
	if isNilDelayer(delayer) {
		return ErrorCodeESCNilDelayer
	}

	logUint32(c.logger, calibrateMaxPrefix, c.MaxDuty)
	for _, channel := range channels {
		if err := c.SetChannelMaxDuty(channel); err != tinygoerrors.ErrorCodeNil {
			return err
		}
	}
	delayer.Delay(delay)

	logUint32(c.logger, calibrateMinPrefix, c.MinDuty)
	for _, channel := range channels {
		if err := c.SetChannelMinDuty(channel); err != tinygoerrors.ErrorCodeNil {
			return err
		}
	}
	delayer.Delay(delay)

	logMessage(c.logger, calibrationDonePrefix)
	return tinygoerrors.ErrorCodeNil
}

// CalibrateChannelsDefault calibrates the channels holding each extreme for the stored
// CalibrationDelay.
func (c *ChannelController) CalibrateChannelsDefault(
	delayer Delayer,
	channels []uint8,
) tinygoerrors.ErrorCode {
	return c.CalibrateChannels(c.CalibrationDelay, delayer, channels)
}
