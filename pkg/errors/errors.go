// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package errors provides structured error types for the smart-house registry.
//
// Registry operations report failures as typed errors carrying the operation
// and the room or device involved, wrapping one of the sentinel errors below
// so callers can branch with errors.Is:
//
//	err := house.AddRoom(home.NewRoom("Kitchen"))
//	if errors.Is(err, errors.ErrRoomExists) {
//	    // the house is unchanged
//	}
//
//	var roomErr *errors.RoomError
//	if errors.As(err, &roomErr) {
//	    log.Printf("rejected room %s", roomErr.Room)
//	}
//
// Lookups that find nothing are not errors; they return a (value, false) pair.
package errors

import (
	"errors"
	"fmt"
)

// RoomError represents an error during a house room operation.
type RoomError struct {
	Op   string // Operation being performed (e.g., "add room")
	Room string // Room name involved (if applicable)
	Err  error  // Underlying error
}

func (e *RoomError) Error() string {
	if e.Room != "" {
		return fmt.Sprintf("house %s (room=%s): %v", e.Op, e.Room, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("house %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("house %s failed", e.Op)
}

func (e *RoomError) Unwrap() error {
	return e.Err
}

// NewRoomError creates a new room error.
func NewRoomError(op string, room string, err error) *RoomError {
	return &RoomError{Op: op, Room: room, Err: err}
}

// IsRoomError checks if an error is a RoomError.
func IsRoomError(err error) bool {
	var re *RoomError
	return errors.As(err, &re)
}

// DeviceError represents an error during a device inventory operation.
type DeviceError struct {
	Op     string // Operation being performed (e.g., "add device")
	Device string // Device name involved (if applicable)
	Err    error  // Underlying error
}

func (e *DeviceError) Error() string {
	if e.Device != "" {
		return fmt.Sprintf("inventory %s (device=%s): %v", e.Op, e.Device, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("inventory %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("inventory %s failed", e.Op)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewDeviceError creates a new device error.
func NewDeviceError(op string, device string, err error) *DeviceError {
	return &DeviceError{Op: op, Device: device, Err: err}
}

// IsDeviceError checks if an error is a DeviceError.
func IsDeviceError(err error) bool {
	var de *DeviceError
	return errors.As(err, &de)
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field string // Configuration field that caused the error
	Value string // Invalid value (optional)
	Err   error  // Underlying error or description
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config error in field %q (value=%q): %v", e.Field, e.Value, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("config error in field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config error in field %q", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(field string, value string, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Err: err}
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Sentinel errors for common conditions
var (
	// ErrRoomExists indicates a room with the same name is already in the house
	ErrRoomExists = errors.New("room already exists")

	// ErrInvalidRoom indicates a nil room was passed to the house
	ErrInvalidRoom = errors.New("invalid room")

	// ErrDeviceExists indicates a device with the same name is already owned
	ErrDeviceExists = errors.New("device already exists")

	// ErrInvalidDevice indicates a nil device was passed to the inventory
	ErrInvalidDevice = errors.New("invalid device")

	// ErrUnknownRoomOrder indicates an unrecognised report room ordering
	ErrUnknownRoomOrder = errors.New("unknown room order")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)
