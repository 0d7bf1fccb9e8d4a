// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package home

import "sort"

// DeviceSet is a set of device names
type DeviceSet map[string]struct{}

// Has reports whether name is in the set
func (s DeviceSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set
func (s DeviceSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending order
func (s DeviceSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the set
func (s DeviceSet) Clone() DeviceSet {
	c := make(DeviceSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Room is a named registry of device names. It never holds device objects.
type Room struct {
	name    string
	devices DeviceSet
}

// NewRoom creates a room with no devices
func NewRoom(name string) *Room {
	return &Room{
		name:    name,
		devices: make(DeviceSet),
	}
}

// Name returns the room name
func (r *Room) Name() string {
	return r.name
}

// AddDevice registers a device name. Adding a name twice has no effect.
func (r *Room) AddDevice(name string) {
	r.devices[name] = struct{}{}
}

// HasDevice reports whether name is registered in the room
func (r *Room) HasDevice(name string) bool {
	return r.devices.Has(name)
}

// Devices returns a copy of the registered device names
func (r *Room) Devices() DeviceSet {
	return r.devices.Clone()
}
