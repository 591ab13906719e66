//go:build linux

package linuxinput

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrieee44/evremap/internal/linuxioctl"
	"golang.org/x/sys/unix"
)

// Device represents an evdev input device.
// It wraps the opened /dev/input/eventN file.
type Device struct {
	file *os.File
	fd   uintptr
}

// DeviceError wraps a failure opening, grabbing, creating, or doing I/O
// against an evdev or uinput device. Device identifies the device path
// (or a descriptive name for devices with no path yet, e.g. a uinput
// node still under construction); Op names the operation that failed.
type DeviceError struct {
	Device string
	Op     string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewDevice opens the evdev device at the given path and returns a Device.
// The path is cleaned before opening, and the device file is opened
// in read-write mode. The caller is responsible for closing the device
// when no longer needed.
func NewDevice(path string) (*Device, error) {
	var (
		device *Device
		file   *os.File
		err    error
	)

	file, err = os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, &DeviceError{Device: path, Op: "linuxinput.NewDevice", Err: err}
	}

	device = &Device{
		file: file,
		fd:   file.Fd(),
	}

	return device, nil
}

// Devices scans /dev/input for event devices, opens each one, and
// returns a slice of Device pointers. If any device fails to open,
// an error is returned and no devices are returned.
func Devices() ([]*Device, error) {
	var (
		devices []*Device
		device  *Device
		paths   []string
		path    string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("linuxinput.Devices: %w", err)
	}

	devices = make([]*Device, 0, len(paths))
	for _, path = range paths {
		device, err = NewDevice(path)
		if err != nil {
			return nil, fmt.Errorf("linuxinput.Devices: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// Path returns the cleaned path the device file was opened with
// (e.g. "/dev/input/event5").
func (dev *Device) Path() string {
	return dev.file.Name()
}

// Name returns the human-readable name of the evdev device.
// It sends the [EVIOCGNAME] ioctl to read up to 256 bytes and
// converts the null-terminated result into a Go string.
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = linuxioctl.Any(dev.fd, EVIOCGNAME(256), &buf[0])
	if err != nil {
		return "", &DeviceError{Device: dev.Path(), Op: "Device.Name", Err: err}
	}

	return unix.ByteSliceToString(buf), nil
}

// Phys returns the physical location path of the evdev device, e.g.
// "usb-0000:00:14.0-1/input0". It issues the [EVIOCGPHYS] ioctl.
func (dev *Device) Phys() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = linuxioctl.Any(dev.fd, EVIOCGPHYS(256), &buf[0])
	if err != nil {
		return "", &DeviceError{Device: dev.Path(), Op: "Device.Phys", Err: err}
	}

	return unix.ByteSliceToString(buf), nil
}

// ID returns the platform-specific identifier for this evdev device.
// It issues the EVIOCGID ioctl to fetch the bus, vendor, product, and version fields.
// The result is formatted as:
// "bus 0x<bustype> vendor 0x<vendor> product 0x<product> version 0x<version>".
// e.g. "bus 0x3 vendor 0x46d product 0xc24f version 0x111".
func (dev *Device) ID() (string, error) {
	var (
		id  ID
		err error
	)

	err = linuxioctl.Any(dev.fd, EVIOCGID, &id)
	if err != nil {
		return "", &DeviceError{Device: dev.Path(), Op: "Device.ID", Err: err}
	}

	return fmt.Sprintf(
		"bus 0x%x vendor 0x%x product 0x%x version 0x%x",
		id.Bustype,
		id.Vendor,
		id.Product,
		id.Version,
	), nil
}

// Events returns a slice of the event types the device supports. EV_REP
// is left out even when the device reports it.
func (dev *Device) Events() ([]uint16, error) {
	var (
		buf       []byte
		events    []uint16
		eventType uint16
		err       error
	)

	buf = make([]byte, (EV_MAX+7)/8)

	err = linuxioctl.Any(
		dev.fd,
		EVIOCGBIT(0, uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, &DeviceError{Device: dev.Path(), Op: "Device.Events", Err: err}
	}

	events = make([]uint16, 0, EV_CNT)

	for eventType = range EV_CNT {
		if !TestBit(buf, uint(eventType)) {
			continue
		}

		if eventType == EV_REP {
			continue
		}

		events = append(events, eventType)
	}

	return events, nil
}

// Codes returns all supported event codes for the given eventType.
func (dev *Device) Codes(eventType uint16) ([]uint16, error) {
	var (
		buf            []byte
		codes          []uint16
		maxCodes, code uint
		ok             bool
		err            error
	)

	maxCodes, ok = MaxCodes(eventType)
	if !ok {
		return nil, fmt.Errorf("Device.Codes: %w %d", ErrInvalidEventType, eventType)
	}

	buf = make([]byte, (maxCodes+7)/8)

	err = linuxioctl.Any(
		dev.fd,
		EVIOCGBIT(uint(eventType), uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, &DeviceError{Device: dev.Path(), Op: "Device.Codes", Err: err}
	}

	codes = make([]uint16, 0, maxCodes+1)

	for code = range maxCodes + 1 {
		if !TestBit(buf, code) {
			continue
		}

		codes = append(codes, uint16(code))
	}

	return codes, nil
}

// Grab requests exclusive access to the device: once granted, events
// delivered by the kernel reach only this process. It issues the
// [EVIOCGRAB] ioctl with a non-zero argument.
func (dev *Device) Grab() error {
	var err error

	err = unix.IoctlSetInt(int(dev.fd), uint(EVIOCGRAB()), 1)
	if err != nil {
		return &DeviceError{Device: dev.Path(), Op: "Device.Grab", Err: err}
	}

	return nil
}

// Ungrab releases a previously acquired exclusive grab by issuing the
// [EVIOCGRAB] ioctl with a zero argument.
func (dev *Device) Ungrab() error {
	var err error

	err = unix.IoctlSetInt(int(dev.fd), uint(EVIOCGRAB()), 0)
	if err != nil {
		return &DeviceError{Device: dev.Path(), Op: "Device.Ungrab", Err: err}
	}

	return nil
}

// ReadEvent blocks until the kernel delivers the next raw input_event
// record from the device and returns it.
func (dev *Device) ReadEvent() (Event, error) {
	var (
		event Event
		err   error
	)

	err = binary.Read(dev.file, binary.LittleEndian, &event)
	if err != nil {
		return Event{}, &DeviceError{Device: dev.Path(), Op: "Device.ReadEvent", Err: err}
	}

	return event, nil
}

// Close closes the evdev device by closing its underlying file handle.
func (dev *Device) Close() error {
	var err error

	err = dev.file.Close()
	if err != nil {
		return &DeviceError{Device: dev.Path(), Op: "Device.Close", Err: err}
	}

	return nil
}
