// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package provider implements interfaces.DeviceInfoProvider strategies.
//
// Owning holds its devices by value. Borrowing refers to devices owned by a
// device.Inventory and only reaches them while the inventory still owns them.
// Both format their output through FullDeviceInfo.
package provider

import (
	"fmt"

	"github.com/soothill/smart-house/device"
	"github.com/soothill/smart-house/pkg/interfaces"
)

var (
	_ interfaces.DeviceInfoProvider = (*Owning)(nil)
	_ interfaces.DeviceInfoProvider = (*Borrowing)(nil)
)

// FullDeviceInfo looks up deviceName in table and formats its report for room.
// It returns false when the table has no such device.
func FullDeviceInfo(room, deviceName string, table map[string]device.Device) (string, bool) {
	d, ok := table[deviceName]
	if !ok || d == nil {
		return "", false
	}
	return fmt.Sprintf("Full info of device in Room %s - %s", room, d.Report()), true
}

// lookupTable indexes devices by name. Later devices win on name collisions.
func lookupTable(devices []device.Device) map[string]device.Device {
	table := make(map[string]device.Device, len(devices))
	for _, d := range devices {
		if d == nil {
			continue
		}
		table[d.Name()] = d
	}
	return table
}
