// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package provider

import (
	"github.com/soothill/smart-house/device"
	"github.com/soothill/smart-house/pkg/logger"
	"github.com/soothill/smart-house/pkg/metrics"
)

const borrowingLabel = "borrowing"

// Borrowing is a provider that borrows devices owned by an Inventory.
//
// It records which device names it may describe and resolves them through
// the owner on every query. A device the owner has removed is therefore
// reported as unknown rather than being kept alive by the provider.
type Borrowing struct {
	owner *device.Inventory
	names []string
}

// NewBorrowing creates a provider borrowing the named devices from owner.
// Names the owner does not hold yet are kept and resolve once added.
func NewBorrowing(owner *device.Inventory, names ...string) *Borrowing {
	borrowed := make([]string, len(names))
	copy(borrowed, names)
	return &Borrowing{owner: owner, names: borrowed}
}

// GetInfo implements interfaces.DeviceInfoProvider
func (p *Borrowing) GetInfo(room, deviceName string) (string, bool) {
	info, ok := FullDeviceInfo(room, deviceName, p.table())
	metrics.ObserveLookup(borrowingLabel, ok)
	if !ok && p.borrows(deviceName) {
		log := logger.Component("provider")
		log.Debug().Str("device", deviceName).Str("room", room).Msg("Borrowed device no longer owned")
	}
	return info, ok
}

func (p *Borrowing) borrows(name string) bool {
	for _, n := range p.names {
		if n == name {
			return true
		}
	}
	return false
}

// Borrowed returns the device names this provider was created with
func (p *Borrowing) Borrowed() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// table builds the per-query index of borrowed devices still owned.
func (p *Borrowing) table() map[string]device.Device {
	if p.owner == nil {
		return nil
	}
	devices := make([]device.Device, 0, len(p.names))
	for _, name := range p.names {
		if d, ok := p.owner.Get(name); ok {
			devices = append(devices, d)
		}
	}
	return lookupTable(devices)
}
