//go:build linux

package main

import (
	"fmt"
	"time"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"github.com/andrieee44/evremap/mapper"
	"github.com/andrieee44/evremap/mapping"
	"github.com/sirupsen/logrus"
)

// grabDelay gives the user a window to release any keys held down while
// launching the remapper before the source device is grabbed.
const grabDelay = 2 * time.Second

// runRemap loads a configuration file, finds the device it names,
// grabs it, and runs the remapper until it exits with an error.
func runRemap(log *logrus.Logger, configPath string) error {
	var (
		cfg  mapping.MappingConfig
		path string
		m    *mapper.InputMapper
		err  error
	)

	cfg, err = mapping.Load(configPath)
	if err != nil {
		return fmt.Errorf("runRemap: %w", err)
	}

	log.Error("short delay: release any keys now!")
	time.Sleep(grabDelay)

	path, err = findDevice(cfg)
	if err != nil {
		return fmt.Errorf("runRemap: %w", err)
	}

	m, err = mapper.Create(path, cfg, log)
	if err != nil {
		return fmt.Errorf("runRemap: %w", err)
	}

	defer m.Close()

	err = m.Run()
	if err != nil {
		return fmt.Errorf("runRemap: %w", err)
	}

	return nil
}

// findDevice scans the evdev devices for one whose name matches cfg's
// device_name (and, if given, whose phys matches cfg's phys too, to
// disambiguate multiple devices sharing a name).
func findDevice(cfg mapping.MappingConfig) (string, error) {
	var (
		devs []*linuxinput.Device
		dev  *linuxinput.Device
		name string
		phys string
		path string
		err  error
	)

	devs, err = linuxinput.Devices()
	if err != nil {
		return "", fmt.Errorf("findDevice: %w", err)
	}

	for _, dev = range devs {
		name, err = dev.Name()
		if err != nil {
			continue
		}

		if name != cfg.DeviceName {
			dev.Close()

			continue
		}

		if cfg.Phys != "" {
			phys, err = dev.Phys()
			if err != nil || phys != cfg.Phys {
				dev.Close()

				continue
			}
		}

		path = dev.Path()

		err = dev.Close()
		if err != nil {
			return "", fmt.Errorf("findDevice: %w", err)
		}

		return path, nil
	}

	return "", fmt.Errorf("findDevice: no device named %q found", cfg.DeviceName)
}
