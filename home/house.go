// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

// Package home provides the house and room registry and the text report
// generator.
//
// A House holds uniquely named rooms. Rooms only record device names; the
// device details shown in a report come from an interfaces.DeviceInfoProvider
// supplied by the caller, so the same house can be reported against different
// sets of devices.
//
// # Example Usage
//
//	house := home.NewHouse("My Smart House")
//	living := home.NewRoom("Living Room")
//	living.AddDevice("sm_socket_1")
//	if err := house.AddRoom(living); err != nil {
//	    return err
//	}
//
//	info := provider.NewOwning(device.NewSocket("sm_socket_1", false))
//	fmt.Print(house.CreateReport(info))
package home

import (
	"sort"

	apperrors "github.com/soothill/smart-house/pkg/errors"
	"github.com/soothill/smart-house/pkg/logger"
	"github.com/soothill/smart-house/pkg/metrics"
)

// House is a named collection of uniquely named rooms.
//
// A House is not safe for concurrent use.
type House struct {
	name  string
	rooms map[string]*Room
	added []string // room names in insertion order
	order RoomOrder
}

// NewHouse creates an empty house
func NewHouse(name string, opts ...Option) *House {
	h := &House{
		name:  name,
		rooms: make(map[string]*Room),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name returns the house name
func (h *House) Name() string {
	return h.name
}

// RoomCount returns the number of rooms in the house
func (h *House) RoomCount() int {
	return len(h.rooms)
}

// AddRoom attaches room to the house. If a room with the same name already
// exists the house is left unchanged and an error wrapping
// errors.ErrRoomExists is returned.
func (h *House) AddRoom(room *Room) error {
	if room == nil {
		return apperrors.NewRoomError("add room", "", apperrors.ErrInvalidRoom)
	}

	name := room.Name()
	if _, exists := h.rooms[name]; exists {
		metrics.RoomsRejected.Inc()
		logger.Warn().Str("house", h.name).Str("room", name).Msg("Room already exists, not added")
		return apperrors.NewRoomError("add room", name, apperrors.ErrRoomExists)
	}

	h.rooms[name] = room
	h.added = append(h.added, name)
	metrics.RoomsAdded.Inc()
	logger.Debug().Str("house", h.name).Str("room", name).Int("rooms", len(h.rooms)).Msg("Room added")
	return nil
}

// Room returns the room with the given name
func (h *House) Room(name string) (*Room, bool) {
	r, ok := h.rooms[name]
	return r, ok
}

// DevicesInRoom returns a copy of the device names registered in the named room
func (h *House) DevicesInRoom(name string) (DeviceSet, bool) {
	r, ok := h.rooms[name]
	if !ok {
		return nil, false
	}
	return r.Devices(), true
}

// AllDevices returns a snapshot of every room's device names keyed by room
// name. The result shares no state with the house.
func (h *House) AllDevices() map[string]DeviceSet {
	all := make(map[string]DeviceSet, len(h.rooms))
	for name, room := range h.rooms {
		all[name] = room.Devices()
	}
	return all
}

// roomNames returns room names in the configured report order.
func (h *House) roomNames() []string {
	names := make([]string, len(h.added))
	copy(names, h.added)
	if h.order == OrderByName {
		sort.Strings(names)
	}
	return names
}
