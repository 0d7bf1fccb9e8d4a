// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package home

import (
	"strings"

	apperrors "github.com/soothill/smart-house/pkg/errors"
)

// RoomOrder controls the order in which a report lists rooms
type RoomOrder int

const (
	// OrderByName lists rooms alphabetically
	OrderByName RoomOrder = iota
	// OrderByInsertion lists rooms in the order they were added
	OrderByInsertion
)

// String returns the configuration name of the order
func (o RoomOrder) String() string {
	switch o {
	case OrderByInsertion:
		return "insertion"
	default:
		return "name"
	}
}

// ParseRoomOrder converts "name" or "insertion" to a RoomOrder
func ParseRoomOrder(s string) (RoomOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return OrderByName, nil
	case "insertion":
		return OrderByInsertion, nil
	default:
		return OrderByName, apperrors.NewConfigError("report.room_order", s, apperrors.ErrUnknownRoomOrder)
	}
}

// Option configures a House
type Option func(*House)

// WithRoomOrder sets the room order used by CreateReport
func WithRoomOrder(order RoomOrder) Option {
	return func(h *House) {
		h.order = order
	}
}
