// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package interfaces

// DeviceInfoProvider resolves a device registered in a room to a detailed,
// human-readable info line.
//
// A house never sees device objects directly; it only asks a provider for
// text. Implementations decide whether they own the devices they describe
// or borrow them from somewhere else.
type DeviceInfoProvider interface {
	// GetInfo returns the info line for deviceName in room, or false when the
	// provider does not know the device. Absence is not an error.
	GetInfo(room, deviceName string) (string, bool)
}

// Reporter produces a text report using a DeviceInfoProvider.
type Reporter interface {
	CreateReport(provider DeviceInfoProvider) string
}
