//go:build linux

package uinputdev

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"github.com/andrieee44/evremap/internal/linuxioctl"
	"golang.org/x/sys/unix"
)

// uinputPath is the character device every virtual input device is
// created through.
const uinputPath = "/dev/uinput"

// createDelay is how long the kernel is given to finish creating the
// device node after UI_DEV_CREATE before the caller starts writing
// events to it.
const createDelay = 100 * time.Millisecond

// Device is a virtual keyboard created through /dev/uinput: the
// counterpart to a linuxinput.Device, but written to instead of read
// from.
type Device struct {
	file *os.File
	fd   uintptr
	name string
}

// Create opens /dev/uinput and brings up a virtual keyboard named name
// that supports exactly the given key codes -- the destination device
// must advertise every code a rule's Mappings can ever produce before
// the source device is grabbed, or the kernel silently drops events for
// codes it was never told about.
func Create(name string, keys []linuxinput.EventCode) (*Device, error) {
	var (
		file *os.File
		err  error
		dev  *Device
		k    linuxinput.EventCode
		st   setup
	)

	file, err = os.OpenFile(uinputPath, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, &linuxinput.DeviceError{Device: name, Op: "uinputdev.Create: opening " + uinputPath, Err: err}
	}

	dev = &Device{file: file, fd: file.Fd(), name: name}

	// UI_SET_EVBIT and UI_SET_KEYBIT take the bit number as the ioctl
	// argument itself, not through a pointer.
	err = unix.IoctlSetInt(int(dev.fd), uiSetEvBit, linuxinput.EV_KEY)
	if err != nil {
		file.Close()

		return nil, &linuxinput.DeviceError{Device: name, Op: "uinputdev.Create: UI_SET_EVBIT", Err: err}
	}

	for _, k = range keys {
		err = unix.IoctlSetInt(int(dev.fd), uiSetKeyBit, int(k))
		if err != nil {
			file.Close()

			return nil, &linuxinput.DeviceError{
				Device: name,
				Op:     fmt.Sprintf("uinputdev.Create: UI_SET_KEYBIT(%d)", k),
				Err:    err,
			}
		}
	}

	st = setup{ID: id{Bustype: busUSB, Vendor: 0x0001, Product: 0x0001, Version: 1}}
	copy(st.Name[:], name)

	err = linuxioctl.Any(dev.fd, uiDevSetup, &st)
	if err != nil {
		file.Close()

		return nil, &linuxinput.DeviceError{Device: name, Op: "uinputdev.Create: UI_DEV_SETUP", Err: err}
	}

	err = unix.IoctlSetInt(int(dev.fd), uiDevCreate, 0)
	if err != nil {
		file.Close()

		return nil, &linuxinput.DeviceError{Device: name, Op: "uinputdev.Create: UI_DEV_CREATE", Err: err}
	}

	time.Sleep(createDelay)

	return dev, nil
}

// WriteEvent writes a single input_event to the virtual device. It does
// not send the trailing SYN_REPORT; callers batch several WriteEvent
// calls and finish with Sync.
func (dev *Device) WriteEvent(eventType, code linuxinput.EventCode, value int32) error {
	var (
		event linuxinput.Event
		err   error
	)

	event = linuxinput.Event{Type: eventType, Code: code, Value: value}

	err = binary.Write(dev.file, binary.LittleEndian, &event)
	if err != nil {
		return &linuxinput.DeviceError{Device: dev.name, Op: "uinputdev.Device.WriteEvent", Err: err}
	}

	return nil
}

// Sync writes an EV_SYN/SYN_REPORT event, flushing the preceding batch
// of WriteEvent calls as a single atomic input report.
func (dev *Device) Sync() error {
	var err error

	err = dev.WriteEvent(linuxinput.EV_SYN, linuxinput.SYN_REPORT, 0)
	if err != nil {
		return err
	}

	return nil
}

// Close destroys the virtual device and releases the uinput handle.
func (dev *Device) Close() error {
	var err error

	err = unix.IoctlSetInt(int(dev.fd), uiDevDestroy, 0)
	if err != nil {
		dev.file.Close()

		return &linuxinput.DeviceError{Device: dev.name, Op: "uinputdev.Device.Close: UI_DEV_DESTROY", Err: err}
	}

	err = dev.file.Close()
	if err != nil {
		return &linuxinput.DeviceError{Device: dev.name, Op: "uinputdev.Device.Close", Err: err}
	}

	return nil
}
