package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	tinygoesc "github.com/ralvarezdev/tinygo-esc"
	"github.com/ralvarezdev/tinygo-esc/hostpwm"
	"github.com/ralvarezdev/tinygo-esc/internal/config"
)

const usage = `usage: escctl [-config path] <command>

commands:
  calibrate   hold max then min pulse for calibration_delay each, then arm
  arm         write the arm pulse
  disarm      write the disarm pulse (requires disarm_pulse in the config)
  min         write the min pulse
  max         write the max pulse
  set NS      write a pulse of NS nanoseconds, clamped to [min_pulse, max_pulse]
`

type commandKind int

const (
	commandPreset commandKind = iota
	commandCalibrate
	commandSet
)

type command struct {
	kind   commandKind
	preset tinygoesc.Preset
	duty   uint32
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("missing command")
	}
	name := args[0]
	switch name {
	case "calibrate":
		if len(args) != 1 {
			return command{}, fmt.Errorf("calibrate takes no arguments")
		}
		return command{kind: commandCalibrate}, nil
	case "set":
		if len(args) != 2 {
			return command{}, fmt.Errorf("set takes exactly one argument")
		}
		duty, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return command{}, fmt.Errorf("invalid pulse %q: %w", args[1], err)
		}
		return command{kind: commandSet, duty: uint32(duty)}, nil
	}
	preset, ok := tinygoesc.ParsePreset(name)
	if !ok {
		return command{}, fmt.Errorf("unknown command %q", name)
	}
	if len(args) != 1 {
		return command{}, fmt.Errorf("%s takes no arguments", name)
	}
	return command{kind: commandPreset, preset: preset}, nil
}

// newController wraps output with the pulse envelope of the config. Pulses are written in
// nanoseconds.
func newController(cfg config.ESCConfig, output tinygoesc.PinOutput) (*tinygoesc.PinController, error) {
	ctrl, code := tinygoesc.NewPinController(output, nil)
	if code != tinygoerrors.ErrorCodeNil {
		return nil, fmt.Errorf("controller init failed with error code %d", code)
	}
	ctrl.MinDuty = uint32(cfg.MinPulse.Nanoseconds())
	ctrl.MaxDuty = uint32(cfg.MaxPulse.Nanoseconds())
	ctrl.ArmDuty = uint32(cfg.ArmPulse.Nanoseconds())
	if cfg.DisarmPulse != nil {
		ctrl.SetDisarmDuty(uint32(cfg.DisarmPulse.Nanoseconds()))
	}
	ctrl.CalibrationDelay = cfg.CalibrationDelay
	return ctrl, nil
}

func run(ctrl *tinygoesc.PinController, cmd command, delayer tinygoesc.Delayer) error {
	var code tinygoerrors.ErrorCode
	switch cmd.kind {
	case commandCalibrate:
		log.Printf("calibrating: max=%dns min=%dns hold=%s", ctrl.MaxDuty, ctrl.MinDuty, ctrl.CalibrationDelay)
		if code = ctrl.CalibrateDefault(delayer); code != tinygoerrors.ErrorCodeNil {
			return fmt.Errorf("calibrate failed with error code %d", code)
		}
		code = ctrl.Arm()
	case commandSet:
		code = ctrl.SetDuty(cmd.duty)
	default:
		code = ctrl.SetPreset(cmd.preset)
	}
	if code != tinygoerrors.ErrorCodeNil {
		return fmt.Errorf("command failed with error code %d", code)
	}
	log.Printf("pulse now %dns", ctrl.GetDuty())
	return nil
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./esc.yaml", "Path to YAML config")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "escctl: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph host init failed: %v", err)
	}
	pin := gpioreg.ByName(cfg.ESC.Pin)
	if pin == nil {
		log.Fatalf("pin %q not found", cfg.ESC.Pin)
	}

	output, err := hostpwm.New(pin, cfg.ESC.Period())
	if err != nil {
		log.Fatalf("pwm output init failed: %v", err)
	}
	ctrl, err := newController(cfg.ESC, output)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("escctl driving %s at %dHz", output, cfg.ESC.FrequencyHz)
	if err := run(ctrl, cmd, tinygoesc.SleepDelayer{}); err != nil {
		if hwErr := output.LastError(); hwErr != nil {
			log.Fatalf("%v: %v", err, hwErr)
		}
		log.Fatalf("%v", err)
	}
}
