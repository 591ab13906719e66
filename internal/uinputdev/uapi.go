//go:build linux

package uinputdev

import "github.com/andrieee44/evremap/internal/linuxioctl"

// uinputMaxNameSize is UINPUT_MAX_NAME_SIZE from linux/uinput.h.
const uinputMaxNameSize = 80

// busUSB is BUS_USB from linux/input.h, used as the synthetic device's
// bus type since the virtual device has no real physical bus.
const busUSB = 0x03

var (
	// uiDevCreate is UI_DEV_CREATE: instantiate the device configured by
	// the preceding UI_SET_EVBIT/UI_SET_KEYBIT/UI_DEV_SETUP calls.
	uiDevCreate = linuxioctl.IO('U', 1)

	// uiDevDestroy is UI_DEV_DESTROY: remove the virtual device.
	uiDevDestroy = linuxioctl.IO('U', 2)

	// uiDevSetup is UI_DEV_SETUP: set the device's id/name in one call.
	uiDevSetup = linuxioctl.IOW('U', 3, setup{})

	// uiSetEvBit is UI_SET_EVBIT: enable an event type (e.g. EV_KEY) on
	// the device being configured.
	uiSetEvBit = linuxioctl.IOW('U', 100, int32(0))

	// uiSetKeyBit is UI_SET_KEYBIT: enable a single key code within
	// EV_KEY on the device being configured.
	uiSetKeyBit = linuxioctl.IOW('U', 101, int32(0))
)

// setup mirrors struct uinput_setup from linux/uinput.h, the argument to
// UI_DEV_SETUP.
type setup struct {
	ID        id
	Name      [uinputMaxNameSize]byte
	FFEffects uint32
}

// id mirrors struct input_id; kept distinct from linuxinput.ID since the
// two packages intentionally don't share types across the
// physical/virtual device boundary.
type id struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}
