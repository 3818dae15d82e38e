package tinygo_esc

import (
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygologger "github.com/ralvarezdev/tinygo-logger"
)

type (
	// Duties holds the safe duty envelope of an ESC and its duty presets.
	//
	// Every duty written through a controller is clamped into [MinDuty, MaxDuty]. MinDuty must not
	// be greater than MaxDuty, this is not validated.
	Duties struct {
		MinDuty          uint32
		MaxDuty          uint32
		ArmDuty          uint32
		DisarmDuty       *uint32
		CalibrationDelay time.Duration
	}

	// DelayerFunc adapts a function to the Delayer interface
	DelayerFunc func(d time.Duration)

	// SleepDelayer is the Delayer backed by time.Sleep
	SleepDelayer struct{}
)

var (
	// setDutyPrefix is the prefix for the log message when writing a duty to the output
	setDutyPrefix = []byte("Set ESC duty to:")

	// clampedDutyPrefix is the prefix for the log message when a requested duty was out of range
	clampedDutyPrefix = []byte("Clamped out of range ESC duty:")

	// setChannelPrefix is the prefix for the log message naming the channel being written
	setChannelPrefix = []byte("Set ESC duty on channel:")

	// setPeriodPrefix is the prefix for the log message when setting the PWM period
	setPeriodPrefix = []byte("Set ESC PWM period to:")

	// calibrateMaxPrefix is the prefix for the log message of the max duty calibration phase
	calibrateMaxPrefix = []byte("Calibrating ESC max duty:")

	// calibrateMinPrefix is the prefix for the log message of the min duty calibration phase
	calibrateMinPrefix = []byte("Calibrating ESC min duty:")

	// calibrationDonePrefix is the prefix for the log message when the calibration finishes
	calibrationDonePrefix = []byte("ESC calibration finished")

	// disarmNotConfiguredPrefix is the prefix for the log message when disarming without a disarm duty
	disarmNotConfiguredPrefix = []byte("ESC disarm duty not configured")
)

// Clamp returns the duty limited to the range [minDuty, maxDuty].
//
// Parameters:
//
// duty: The duty to clamp
// minDuty: The lower bound
// maxDuty: The upper bound, expected to be greater than or equal to minDuty
//
// Returns:
//
// The clamped duty
func Clamp(duty, minDuty, maxDuty uint32) uint32 {
	return max(min(duty, maxDuty), minDuty)
}

// Clamp returns the duty limited to the configured envelope.
func (d *Duties) Clamp(duty uint32) uint32 {
	return Clamp(duty, d.MinDuty, d.MaxDuty)
}

// SetDisarmDuty configures the disarm duty.
func (d *Duties) SetDisarmDuty(duty uint32) {
	d.DisarmDuty = &duty
}

// presetDuty returns the stored duty of a preset.
//
// Parameters:
//
// preset: The preset to look up
//
// Returns:
//
// The stored duty and an error code if the preset is unknown or not configured
func (d *Duties) presetDuty(preset Preset) (uint32, tinygoerrors.ErrorCode) {
	switch preset {
	case PresetArm:
		return d.ArmDuty, tinygoerrors.ErrorCodeNil
	case PresetDisarm:
		if d.DisarmDuty == nil {
			return 0, ErrorCodeESCDisarmDutyNotConfigured
		}
		return *d.DisarmDuty, tinygoerrors.ErrorCodeNil
	case PresetMin:
		return d.MinDuty, tinygoerrors.ErrorCodeNil
	case PresetMax:
		return d.MaxDuty, tinygoerrors.ErrorCodeNil
	default:
		return 0, ErrorCodeESCUnknownPreset
	}
}

// Delay calls the wrapped function.
func (f DelayerFunc) Delay(d time.Duration) {
	f(d)
}

// isNilDelayer reports whether the delayer is nil, including a nil DelayerFunc
func isNilDelayer(delayer Delayer) bool {
	if delayer == nil {
		return true
	}
	f, ok := delayer.(DelayerFunc)
	return ok && f == nil
}

// Delay sleeps for the given duration.
func (SleepDelayer) Delay(d time.Duration) {
	time.Sleep(d)
}

// logUint32 logs a debug message with an uint32 value if the logger is set
func logUint32(logger tinygologger.Logger, prefix []byte, value uint32) {
	if logger == nil {
		return
	}
	logger.AddMessageWithUint32(
		prefix,
		value,
		true,
		true,
		false,
	)
	logger.Debug()
}

// logMessage logs a debug message if the logger is set
func logMessage(logger tinygologger.Logger, prefix []byte) {
	if logger == nil {
		return
	}
	logger.AddMessage(
		prefix,
		true,
	)
	logger.Debug()
}
