//go:build linux

// Package mapper wires a grabbed physical input device to a created
// virtual device through a remap.StateMachine.
package mapper
