// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package device

import (
	"sort"

	apperrors "github.com/soothill/smart-house/pkg/errors"
	"github.com/soothill/smart-house/pkg/logger"
)

// Inventory owns a set of devices keyed by name.
//
// Providers that borrow devices hold a reference to the Inventory rather than
// to the devices themselves, so a device removed here is no longer reachable
// through any borrower.
//
// An Inventory is not safe for concurrent use.
type Inventory struct {
	devices map[string]Device
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		devices: make(map[string]Device),
	}
}

// Add takes ownership of d. It fails if d is nil or a device with the same
// name is already owned; the inventory is unchanged in both cases.
func (i *Inventory) Add(d Device) error {
	if d == nil {
		return apperrors.NewDeviceError("add device", "", apperrors.ErrInvalidDevice)
	}

	name := d.Name()
	if _, exists := i.devices[name]; exists {
		logger.Warn().Str("device", name).Msg("Device already in inventory, ignoring")
		return apperrors.NewDeviceError("add device", name, apperrors.ErrDeviceExists)
	}

	i.devices[name] = d
	logger.Debug().Str("device", name).Int("count", len(i.devices)).Msg("Device added to inventory")
	return nil
}

// Get returns the device with the given name
func (i *Inventory) Get(name string) (Device, bool) {
	d, ok := i.devices[name]
	return d, ok
}

// Remove drops the device with the given name. It returns false if no such
// device was owned.
func (i *Inventory) Remove(name string) bool {
	if _, ok := i.devices[name]; !ok {
		return false
	}
	delete(i.devices, name)
	logger.Debug().Str("device", name).Msg("Device removed from inventory")
	return true
}

// Len returns the number of owned devices
func (i *Inventory) Len() int {
	return len(i.devices)
}

// Names returns the owned device names in ascending order
func (i *Inventory) Names() []string {
	names := make([]string, 0, len(i.devices))
	for name := range i.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Devices returns the owned devices ordered by name
func (i *Inventory) Devices() []Device {
	names := i.Names()
	devices := make([]Device, 0, len(names))
	for _, name := range names {
		devices = append(devices, i.devices[name])
	}
	return devices
}
