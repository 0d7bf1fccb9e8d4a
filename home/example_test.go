// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package home_test

import (
	"fmt"
	"sort"

	"github.com/soothill/smart-house/device"
	"github.com/soothill/smart-house/home"
	"github.com/soothill/smart-house/provider"
)

// Example builds a three-room house and reports it against an owning and a
// borrowing provider.
func Example() {
	house := home.NewHouse("My Smart House")

	living := home.NewRoom("Living Room")
	bedroom := home.NewRoom("Bedroom")
	kitchen := home.NewRoom("Kitchen")

	living.AddDevice("sm_socket_1")
	bedroom.AddDevice("sm_socket_2")
	kitchen.AddDevice("sm_socket_3")
	kitchen.AddDevice("sm_termometer_1")

	for _, room := range []*home.Room{living, bedroom, kitchen} {
		if err := house.AddRoom(room); err != nil {
			fmt.Println(err)
		}
	}

	owner := device.NewInventory()
	for _, d := range []device.Device{
		device.NewSocket("sm_socket_2", true),
		device.NewThermometer("sm_termometer_1", true),
	} {
		if err := owner.Add(d); err != nil {
			fmt.Println(err)
		}
	}

	owning := provider.NewOwning(device.NewSocket("sm_socket_1", false))
	borrowing := provider.NewBorrowing(owner, "sm_socket_2", "sm_termometer_1")

	fmt.Println("Report #1:")
	fmt.Print(house.CreateReport(owning))
	fmt.Println("Report #2:")
	fmt.Print(house.CreateReport(borrowing))

	all := house.AllDevices()
	rooms := make([]string, 0, len(all))
	for name := range all {
		rooms = append(rooms, name)
	}
	sort.Strings(rooms)
	for _, name := range rooms {
		fmt.Printf("Devices in %s: %v\n", name, all[name].Sorted())
	}

	// Output:
	// Report #1:
	//
	// House name is : My Smart House
	//
	// Room: Bedroom
	// Devices: sm_socket_2
	//
	// Room: Kitchen
	// Devices: sm_socket_3, sm_termometer_1
	//
	// Room: Living Room
	// Devices: sm_socket_1
	//   Full info of device in Room Living Room - Socket: sm_socket_1 and status is false
	//
	// Report #2:
	//
	// House name is : My Smart House
	//
	// Room: Bedroom
	// Devices: sm_socket_2
	//   Full info of device in Room Bedroom - Socket: sm_socket_2 and status is true
	//
	// Room: Kitchen
	// Devices: sm_socket_3, sm_termometer_1
	//   Full info of device in Room Kitchen - Thermometer: sm_termometer_1 and status is true
	//
	// Room: Living Room
	// Devices: sm_socket_1
	//
	// Devices in Bedroom: [sm_socket_2]
	// Devices in Kitchen: [sm_socket_3 sm_termometer_1]
	// Devices in Living Room: [sm_socket_1]
}

// ExampleWithRoomOrder lists rooms in the order they were added.
func ExampleWithRoomOrder() {
	house := home.NewHouse("H", home.WithRoomOrder(home.OrderByInsertion))
	for _, name := range []string{"Kitchen", "Attic"} {
		room := home.NewRoom(name)
		room.AddDevice("s1")
		_ = house.AddRoom(room)
	}

	fmt.Print(house.CreateReport(provider.NewOwning(device.NewSocket("s1", true))))

	// Output:
	// House name is : H
	//
	// Room: Kitchen
	// Devices: s1
	//   Full info of device in Room Kitchen - Socket: s1 and status is true
	//
	// Room: Attic
	// Devices: s1
	//   Full info of device in Room Attic - Socket: s1 and status is true
}
