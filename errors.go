package tinygo_esc

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

const (
	// ErrorCodeESCStartNumber is the starting number for ESC-related error codes.
	ErrorCodeESCStartNumber uint16 = 5230
)

const (
	ErrorCodeESCNilOutput tinygoerrors.ErrorCode = tinygoerrors.ErrorCode(iota + ErrorCodeESCStartNumber)
	ErrorCodeESCNilDelayer
	ErrorCodeESCDisarmDutyNotConfigured
	ErrorCodeESCUnknownPreset
	ErrorCodeESCZeroPeriod
	ErrorCodeESCFailedToConfigurePWM
	ErrorCodeESCFailedToGetPWMChannel
	ErrorCodeESCFailedToSetPWM
	ErrorCodeESCFailedToSetPinOut
	ErrorCodeESCZeroFrequency
)
