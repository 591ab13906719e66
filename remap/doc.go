//go:build linux

// Package remap implements the rule compiler, guard-state bitmaps, and
// key-event state machine at the core of the remapper: it turns a
// mapping.MappingConfig's rules into a dispatch table and replays
// physical key events through it to produce virtual key events.
package remap
