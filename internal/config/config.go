package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ESC ESCConfig `yaml:"esc"`
}

type ESCConfig struct {
	Pin              string         `yaml:"pin"`
	FrequencyHz      int            `yaml:"frequency_hz"`
	MinPulse         time.Duration  `yaml:"min_pulse"`
	MaxPulse         time.Duration  `yaml:"max_pulse"`
	ArmPulse         time.Duration  `yaml:"arm_pulse"`
	DisarmPulse      *time.Duration `yaml:"disarm_pulse"`
	CalibrationDelay time.Duration  `yaml:"calibration_delay"`
}

// Period returns the PWM period derived from FrequencyHz.
func (c ESCConfig) Period() time.Duration {
	return time.Second / time.Duration(c.FrequencyHz)
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	esc := &cfg.ESC
	if esc.Pin == "" {
		return Config{}, fmt.Errorf("esc.pin is required")
	}
	if esc.FrequencyHz < 0 {
		return Config{}, fmt.Errorf("esc.frequency_hz must be > 0")
	}
	if esc.FrequencyHz == 0 {
		esc.FrequencyHz = 50
	}
	if esc.MinPulse <= 0 {
		return Config{}, fmt.Errorf("esc.min_pulse is required")
	}
	if esc.MaxPulse <= 0 {
		return Config{}, fmt.Errorf("esc.max_pulse is required")
	}
	if esc.MinPulse > esc.MaxPulse {
		return Config{}, fmt.Errorf("esc.min_pulse must be <= esc.max_pulse")
	}
	if esc.MaxPulse >= esc.Period() {
		return Config{}, fmt.Errorf("esc.max_pulse must be shorter than the PWM period (%s)", esc.Period())
	}
	if esc.ArmPulse < 0 {
		return Config{}, fmt.Errorf("esc.arm_pulse must be >= 0")
	}
	if esc.ArmPulse == 0 {
		esc.ArmPulse = esc.MinPulse
	}
	if esc.ArmPulse >= esc.Period() {
		return Config{}, fmt.Errorf("esc.arm_pulse must be shorter than the PWM period (%s)", esc.Period())
	}
	if esc.DisarmPulse != nil && *esc.DisarmPulse < 0 {
		return Config{}, fmt.Errorf("esc.disarm_pulse must be >= 0")
	}
	if esc.DisarmPulse != nil && *esc.DisarmPulse >= esc.Period() {
		return Config{}, fmt.Errorf("esc.disarm_pulse must be shorter than the PWM period (%s)", esc.Period())
	}
	if esc.CalibrationDelay < 0 {
		return Config{}, fmt.Errorf("esc.calibration_delay must be >= 0")
	}
	if esc.CalibrationDelay == 0 {
		esc.CalibrationDelay = 8 * time.Second
	}

	return cfg, nil
}
