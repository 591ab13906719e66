//go:build linux

// Package uinputdev creates and drives a virtual keyboard through
// /dev/uinput: the output half of the remapper, mirroring the role
// internal/linuxinput plays for the physical input side.
//
// It implements the userspace api in [uinput.h].
//
// [uinput.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/uinput.h
package uinputdev
