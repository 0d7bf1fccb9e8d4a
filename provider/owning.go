// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package provider

import (
	"sort"

	"github.com/soothill/smart-house/device"
	"github.com/soothill/smart-house/pkg/metrics"
)

const owningLabel = "owning"

// Owning is a provider that owns its devices.
//
// Devices are stored as the values passed in, so later changes made by the
// caller to its own variables never reach the provider. Since owned devices
// are immutable, the lookup table is built once.
type Owning struct {
	table map[string]device.Device
}

// NewOwning creates a provider owning the given devices
func NewOwning(devices ...device.Device) *Owning {
	return &Owning{table: lookupTable(devices)}
}

// GetInfo implements interfaces.DeviceInfoProvider
func (p *Owning) GetInfo(room, deviceName string) (string, bool) {
	info, ok := FullDeviceInfo(room, deviceName, p.table)
	metrics.ObserveLookup(owningLabel, ok)
	return info, ok
}

// Devices returns the owned device names in ascending order
func (p *Owning) Devices() []string {
	names := make([]string, 0, len(p.table))
	for name := range p.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
