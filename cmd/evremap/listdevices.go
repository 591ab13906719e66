//go:build linux

package main

import (
	"fmt"
	"strings"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"github.com/andrieee44/evremap/mapping"
	"github.com/sirupsen/logrus"
)

// listDevices prints every evdev input device's path, name, physical
// location, and supported capabilities, to help a user fill in a
// configuration file's device_name/phys fields and see which KEY_*
// codes a device can actually produce.
func listDevices(log *logrus.Logger) error {
	var (
		devs    []*linuxinput.Device
		dev     *linuxinput.Device
		name    string
		phys    string
		builder strings.Builder
		err     error
	)

	devs, err = linuxinput.Devices()
	if err != nil {
		return fmt.Errorf("listDevices: %w", err)
	}

	for _, dev = range devs {
		name, err = dev.Name()
		if err != nil {
			log.WithField("path", dev.Path()).WithError(err).Warn("reading device name")

			continue
		}

		phys, err = dev.Phys()
		if err != nil {
			log.WithField("path", dev.Path()).WithError(err).Warn("reading device phys")
		}

		builder.WriteString(fmt.Sprintf("Path:  %s\n", dev.Path()))
		builder.WriteString(fmt.Sprintf("Name:  %s\n", name))
		builder.WriteString(fmt.Sprintf("Phys:  %s\n", phys))
		builder.WriteString("Capabilities:\n")
		writeCapabilities(&builder, dev, log)
		builder.WriteString(strings.Repeat("-", 60))
		builder.WriteByte('\n')

		err = dev.Close()
		if err != nil {
			return fmt.Errorf("listDevices: %w", err)
		}
	}

	fmt.Print(builder.String())

	return nil
}

// writeCapabilities renders every event type dev supports and, for
// EV_KEY, every KEY_* code it can produce, with names instead of raw
// numbers.
func writeCapabilities(builder *strings.Builder, dev *linuxinput.Device, log *logrus.Logger) {
	var (
		events    []uint16
		eventType uint16
		codes     []uint16
		code      uint16
		err       error
	)

	events, err = dev.Events()
	if err != nil {
		log.WithField("path", dev.Path()).WithError(err).Warn("reading device events")

		return
	}

	for _, eventType = range events {
		builder.WriteString(fmt.Sprintf("  %s:\n", linuxinput.EventTypeName(eventType)))

		codes, err = dev.Codes(eventType)
		if err != nil {
			log.WithField("path", dev.Path()).WithError(err).Warn("reading device codes")

			continue
		}

		for _, code = range codes {
			if eventType == linuxinput.EV_KEY {
				builder.WriteString(fmt.Sprintf("    %s\n", mapping.KeyCode(code).String()))

				continue
			}

			builder.WriteString(fmt.Sprintf("    %d\n", code))
		}
	}
}
