package tinygo_esc

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygologger "github.com/ralvarezdev/tinygo-logger"
)

type (
	// PinController drives an ESC wired to a single PWM output.
	//
	// Every duty that reaches the output, whether written by a preset, by the calibration or by
	// SetDuty, is clamped into [MinDuty, MaxDuty].
	PinController struct {
		Duties
		output PinOutput
		logger tinygologger.Logger
	}
)

var (
	_ PinOutput = (*PinController)(nil)
	_ Handler   = (*PinController)(nil)
)

// NewPinController creates a new instance of PinController
//
// The output must already be configured and running at its period. Nothing is written to it here,
// and every duty starts at zero.
//
// Parameters:
//
// output: The PWM output connected to the ESC signal line
// logger: The logger to log messages, it can be nil
//
// Returns:
//
// An instance of PinController and an error if the output is nil
func NewPinController(
	output PinOutput,
	logger tinygologger.Logger,
) (*PinController, tinygoerrors.ErrorCode) {
	if output == nil {
		return nil, ErrorCodeESCNilOutput
	}
	return &PinController{
		output: output,
		logger: logger,
	}, tinygoerrors.ErrorCodeNil
}

// Output returns the wrapped PWM output.
func (c *PinController) Output() PinOutput {
	return c.output
}

// Enable enables the output.
func (c *PinController) Enable() tinygoerrors.ErrorCode {
	return c.output.Enable()
}

// Disable disables the output.
func (c *PinController) Disable() tinygoerrors.ErrorCode {
	return c.output.Disable()
}

// GetDuty returns the duty reported by the output, not bounded by the envelope.
func (c *PinController) GetDuty() uint32 {
	return c.output.GetDuty()
}

// GetMaxDuty returns the maximum duty the output can represent.
func (c *PinController) GetMaxDuty() uint32 {
	return c.output.GetMaxDuty()
}

// SetDuty clamps the duty into the envelope and writes it to the output.
//
// Parameters:
//
// duty: The requested duty
//
// Returns:
//
// The error code reported by the output
func (c *PinController) SetDuty(duty uint32) tinygoerrors.ErrorCode {
	clamped := c.Clamp(duty)
	if clamped != duty {
		logUint32(c.logger, clampedDutyPrefix, duty)
	}
	logUint32(c.logger, setDutyPrefix, clamped)
	return c.output.SetDuty(clamped)
}

// Arm writes the arm duty.
func (c *PinController) Arm() tinygoerrors.ErrorCode {
	return c.SetDuty(c.ArmDuty)
}

// Disarm writes the disarm duty.
//
// Returns:
//
// ErrorCodeESCDisarmDutyNotConfigured without writing anything if no disarm duty was set,
// otherwise the error code reported by the output
func (c *PinController) Disarm() tinygoerrors.ErrorCode {
	return c.SetPreset(PresetDisarm)
}

// Stop is an alias of Disarm.
func (c *PinController) Stop() tinygoerrors.ErrorCode {
	return c.Disarm()
}

// SetMaxDuty writes the max duty.
func (c *PinController) SetMaxDuty() tinygoerrors.ErrorCode {
	return c.SetDuty(c.MaxDuty)
}

// SetMinDuty writes the min duty.
func (c *PinController) SetMinDuty() tinygoerrors.ErrorCode {
	return c.SetDuty(c.MinDuty)
}

// SetPreset writes the stored duty of the given preset.
//
// Parameters:
//
// preset: The preset to write
//
// Returns:
//
// An error if the preset is unknown or not configured, otherwise the error code reported by the output
func (c *PinController) SetPreset(preset Preset) tinygoerrors.ErrorCode {
	duty, err := c.presetDuty(preset)
	if err != tinygoerrors.ErrorCodeNil {
		if err == ErrorCodeESCDisarmDutyNotConfigured {
			logMessage(c.logger, disarmNotConfiguredPrefix)
		}
		return err
	}
	return c.SetDuty(duty)
}

// Calibrate teaches the ESC its throttle range.
//
// The output is driven to the max duty, then the delayer blocks for the delay, then the output is
// driven to the min duty and the delayer blocks for the delay again. It stops at the first write
// that fails.
//
// Parameters:
//
// delay: How long each extreme is held
// delayer: The delayer used to block between phases
//
// Returns:
//
// An error if the delayer is nil or a write failed, otherwise ErrorCodeNil
func (c *PinController) Calibrate(
	delay time.Duration,
	delayer Delayer,
) tinygoerrors.ErrorCode {
	if isNilDelayer(delayer) {
		return ErrorCodeESCNilDelayer
	}

	logUint32(c.logger, calibrateMaxPrefix, c.MaxDuty)
	if err := c.SetMaxDuty(); err != tinygoerrors.ErrorCodeNil {
		return err
	}
	delayer.Delay(delay)

	logUint32(c.logger, calibrateMinPrefix, c.MinDuty)
	if err := c.SetMinDuty(); err != tinygoerrors.ErrorCodeNil {
		return err
	}
	delayer.Delay(delay)

	logMessage(c.logger, calibrationDonePrefix)
	return tinygoerrors.ErrorCodeNil
}

// CalibrateDefault calibrates holding each extreme for the stored CalibrationDelay.
func (c *PinController) CalibrateDefault(delayer Delayer) tinygoerrors.ErrorCode {
	return c.Calibrate(c.CalibrationDelay, delayer)
}
