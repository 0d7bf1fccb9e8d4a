// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soothill/smart-house/pkg/interfaces"
	"github.com/soothill/smart-house/pkg/logger"
	"github.com/soothill/smart-house/pkg/metrics"
)

const noDevicesLine = "No devices found in any room.\n"

// CreateReport walks every room and renders its registered device names
// together with whatever details provider knows about them.
//
// The layout is:
//
//	<blank>
//	House name is : {house}
//	<blank>
//	Room: {room}
//	Devices: {a, b}            (only when the room has devices)
//	  {provider info for a}    (only when the provider knows a)
//	<blank>
//
// followed by "No devices found in any room." when no room lists a device
// and the provider knew none. Device names are listed in ascending order.
// A nil provider knows no devices.
func (h *House) CreateReport(provider interfaces.DeviceInfoProvider) string {
	start := time.Now()
	reportID := uuid.New().String()

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "House name is : %s\n", h.name)
	b.WriteString("\n")

	anyDeviceFound := false
	details := 0

	for _, roomName := range h.roomNames() {
		room := h.rooms[roomName]
		fmt.Fprintf(&b, "Room: %s\n", roomName)

		names := room.devices.Sorted()
		if len(names) > 0 {
			anyDeviceFound = true
			fmt.Fprintf(&b, "Devices: %s\n", strings.Join(names, ", "))
		}

		if provider != nil {
			for _, deviceName := range names {
				info, ok := provider.GetInfo(roomName, deviceName)
				if !ok {
					continue
				}
				anyDeviceFound = true
				details++
				fmt.Fprintf(&b, "  %s\n", info)
			}
		}

		b.WriteString("\n")
	}

	if !anyDeviceFound {
		b.WriteString(noDevicesLine)
	}

	metrics.ReportsGenerated.Inc()
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	logger.Debug().
		Str("report_id", reportID).
		Str("house", h.name).
		Int("rooms", len(h.rooms)).
		Int("device_details", details).
		Str("room_order", h.order.String()).
		Msg("Report generated")

	return b.String()
}

var _ interfaces.Reporter = (*House)(nil)
