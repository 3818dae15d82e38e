package tinygo_esc

import (
	"testing"
	"time"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		duty     uint32
		min, max uint32
		want     uint32
	}{
		{"BelowMin", 500, 1000, 2000, 1000},
		{"AtMin", 1000, 1000, 2000, 1000},
		{"InRange", 1500, 1000, 2000, 1500},
		{"AtMax", 2000, 1000, 2000, 2000},
		{"AboveMax", 2500, 1000, 2000, 2000},
		{"CollapsedRange", 7, 42, 42, 42},
		{"ZeroRange", 9, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.duty, tt.min, tt.max))
		})
	}
}

func TestClamp_StaysInRange(t *testing.T) {
	bounds := [][2]uint32{{0, 0}, {0, 10}, {1000, 2000}, {5, 5}, {0, ^uint32(0)}}
	values := []uint32{0, 1, 4, 5, 6, 999, 1000, 1500, 2000, 2001, ^uint32(0)}

	for _, b := range bounds {
		for _, v := range values {
			got := Clamp(v, b[0], b[1])
			assert.GreaterOrEqual(t, got, b[0])
			assert.LessOrEqual(t, got, b[1])
			if v >= b[0] && v <= b[1] {
				assert.Equal(t, v, got)
			}
		}
	}
}

func TestDuties_PresetDuty(t *testing.T) {
	d := Duties{MinDuty: 1, MaxDuty: 4, ArmDuty: 2}

	_, err := d.presetDuty(PresetDisarm)
	assert.Equal(t, ErrorCodeESCDisarmDutyNotConfigured, err)

	d.SetDisarmDuty(3)
	for preset, want := range map[Preset]uint32{
		PresetArm:    2,
		PresetDisarm: 3,
		PresetMin:    1,
		PresetMax:    4,
	} {
		duty, err := d.presetDuty(preset)
		assert.Equal(t, tinygoerrors.ErrorCodeNil, err)
		assert.Equal(t, want, duty, preset.String())
	}

	_, err = d.presetDuty(Preset(99))
	assert.Equal(t, ErrorCodeESCUnknownPreset, err)
}

func TestDelayerFunc(t *testing.T) {
	var got time.Duration
	var delayer Delayer = DelayerFunc(func(d time.Duration) { got = d })

	delayer.Delay(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, got)
}

func TestSleepDelayer(t *testing.T) {
	start := time.Now()
	SleepDelayer{}.Delay(5 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
