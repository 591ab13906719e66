//go:build linux

package uinputdev

import "testing"

// TestIoctlCodesMatchKernelConstants pins the computed request codes
// against the literal values from linux/uinput.h, so a change to
// internal/linuxioctl's macro arithmetic can't silently drift the
// uinput wire protocol.
func TestIoctlCodesMatchKernelConstants(t *testing.T) {
	type testCase struct {
		name string
		got  uint
		want uint
	}

	var (
		cases []testCase
		c     testCase
	)

	cases = []testCase{
		{"UI_DEV_CREATE", uiDevCreate, 0x5501},
		{"UI_DEV_DESTROY", uiDevDestroy, 0x5502},
		{"UI_DEV_SETUP", uiDevSetup, 0x405c5503},
		{"UI_SET_EVBIT", uiSetEvBit, 0x40045564},
		{"UI_SET_KEYBIT", uiSetKeyBit, 0x40045565},
	}

	for _, c = range cases {
		if c.got != c.want {
			t.Errorf("%s = 0x%x, want 0x%x", c.name, c.got, c.want)
		}
	}
}
