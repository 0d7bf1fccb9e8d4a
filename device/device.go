// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package device provides the smart devices known to a house: the Device
// capability, the socket and thermometer variants, and an Inventory that
// owns device instances on behalf of callers.
//
// Devices are immutable values. Copying a Socket or Thermometer yields an
// independent device with the same name and state.
//
// # Example Usage
//
//	socket := device.NewSocket("sm_socket_1", false)
//	fmt.Println(socket.Report())
//	// Socket: sm_socket_1 and status is false
package device

import (
	"fmt"
	"strconv"
)

// Kind identifies a device variant
type Kind int

const (
	// KindSocket is a smart power socket
	KindSocket Kind = iota + 1
	// KindThermometer is a smart thermometer
	KindThermometer
)

// String returns the lowercase variant name
func (k Kind) String() string {
	switch k {
	case KindSocket:
		return "socket"
	case KindThermometer:
		return "thermometer"
	default:
		return "unknown"
	}
}

// Device is the capability every smart device exposes to providers
type Device interface {
	// Name returns the device name, unique within an inventory or provider
	Name() string

	// Report returns a one-line, variant-specific status description
	Report() string
}

// Socket is a smart power socket
type Socket struct {
	name    string
	enabled bool
}

// NewSocket creates a socket with the given name and enabled state
func NewSocket(name string, enabled bool) Socket {
	return Socket{name: name, enabled: enabled}
}

// Name returns the socket name
func (s Socket) Name() string { return s.name }

// Enabled reports whether the socket is switched on
func (s Socket) Enabled() bool { return s.enabled }

// Kind returns KindSocket
func (s Socket) Kind() Kind { return KindSocket }

// Report returns "Socket: {name} and status is {true|false}"
func (s Socket) Report() string {
	return fmt.Sprintf("Socket: %s and status is %s", s.name, strconv.FormatBool(s.enabled))
}

// Thermometer is a smart thermometer
type Thermometer struct {
	name    string
	enabled bool
}

// NewThermometer creates a thermometer with the given name and enabled state
func NewThermometer(name string, enabled bool) Thermometer {
	return Thermometer{name: name, enabled: enabled}
}

// Name returns the thermometer name
func (t Thermometer) Name() string { return t.name }

// Enabled reports whether the thermometer is active
func (t Thermometer) Enabled() bool { return t.enabled }

// Kind returns KindThermometer
func (t Thermometer) Kind() Kind { return KindThermometer }

// Report returns "Thermometer: {name} and status is {true|false}"
func (t Thermometer) Report() string {
	return fmt.Sprintf("Thermometer: %s and status is %s", t.name, strconv.FormatBool(t.enabled))
}
