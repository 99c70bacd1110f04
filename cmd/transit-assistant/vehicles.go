package main

import (
	"fmt"

	"github.com/rodaine/table"

	"github.com/hfxtransit/assistant/utils"
)

const vehiclesHelp = `
[Vehicle Tracker]
Commands:
  add <ROUTE>      - Add a route to track (e.g., add 10)
  remove <ROUTE>   - Stop tracking a route
  routes           - Show all currently tracked routes
  show             - Display real-time positions for tracked buses
  help             - Show this help message again
  back             - Return to the main menu
`

// vehiclesMenu manages the tracked-route list and shows live vehicle
// positions for it. Adds and removes go through the persisted store.
func (a *app) vehiclesMenu() {
	fmt.Println("You can track buses by route and view live vehicle positions.")
	fmt.Print(vehiclesHelp, "\n")

	for {
		command, ok := a.prompt("Vehicles >> ")
		if !ok {
			return
		}
		verb, arg := splitCommand(command)
		switch {
		case verb == "back":
			return
		case verb == "help":
			fmt.Print(vehiclesHelp, "\n")
		case verb == "add" && arg != "":
			a.addTrackedRoute(arg)
		case verb == "remove" && arg != "":
			a.removeTrackedRoute(arg)
		case verb == "routes":
			a.listTrackedRoutes()
		case verb == "show":
			a.showVehicles()
		default:
			fmt.Println("Invalid command. Type 'help' to see available options.")
		}
	}
}

func (a *app) showVehicles() {
	routes := a.tracked.List()
	if len(routes) == 0 {
		fmt.Println("No tracked routes. Use 'add <ROUTE>' first.")
		return
	}
	vehicles, err := a.rt.Vehicles(routes)
	if err != nil {
		fmt.Println("Error fetching vehicle data:", err)
		return
	}
	if len(vehicles) == 0 {
		fmt.Println("No vehicles found on the tracked routes.")
		return
	}
	tbl := table.New("Route", "Vehicle", "Latitude", "Longitude", "Location", "Reported")
	for _, v := range vehicles {
		tbl.AddRow(
			a.gtfs.RouteLabel(v.RouteID),
			v.VehicleID,
			fmt.Sprintf("%.4f", v.Lat),
			fmt.Sprintf("%.4f", v.Lon),
			a.vehicleLocation(v.Lat, v.Lon),
			utils.ClockTimeFromUnixSeconds(v.Timestamp),
		)
	}
	tbl.Print()
}

// vehicleLocation reverse-geocodes a position into a street address. The
// table still renders when the geocoder is down or knows nothing nearby.
func (a *app) vehicleLocation(lat, lon float64) string {
	addr, err := a.geocoder.Reverse(lat, lon)
	if err != nil {
		return "(geocoding failed)"
	}
	if addr == "" {
		return "Unknown location"
	}
	return addr
}
