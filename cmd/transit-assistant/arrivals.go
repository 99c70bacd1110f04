package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rodaine/table"

	"github.com/hfxtransit/assistant/utils"
)

const arrivalsHelp = `
[Route Updates]
Commands:
  find               - Find stops (by name, coordinates, or route)
  stop <STOP_ID>     - Set the stop ID for updates
  route <ROUTE_ID>   - Show arrivals at the stop for a specific route
  routes             - Show all routes serving the stop
  all                - Show all arrivals at the stop
  clear              - Clear the currently set stop ID
  help               - Show this help message again
  back               - Return to the main menu
`

// arrivalsMenu drives the stop/route arrival lookups. A stop id is set once
// and reused until cleared.
func (a *app) arrivalsMenu() {
	fmt.Println("You can interactively check bus arrivals by stop ID and route.")
	fmt.Print(arrivalsHelp, "\n")

	stopID := ""

	for {
		command, ok := a.prompt("Arrivals >> ")
		if !ok {
			return
		}
		// Only the verb is case folded; stop ids must keep their case for
		// the static lookup.
		verb, arg := splitCommand(command)
		switch {
		case verb == "back":
			return
		case verb == "help":
			fmt.Print(arrivalsHelp, "\n")
		case verb == "find":
			a.stopFinderMenu()
		case verb == "stop" && arg != "":
			stop, ok := a.gtfs.StopByID(arg)
			if !ok {
				fmt.Printf("Stop %s is not in the static data. Use 'find' to search for stops.\n", arg)
				continue
			}
			stopID = stop.ID
			fmt.Printf("Stop set to %s (%s).\n", stop.ID, stop.Name)
		case verb == "clear":
			stopID = ""
			fmt.Println("Cleared stop ID. Use 'stop <STOP_ID>' to set a new one.")
		case verb == "routes":
			if stopID == "" {
				fmt.Println("Please enter a stop ID first (use: stop <STOP_ID>)")
				continue
			}
			routes := a.gtfs.RoutesForStop(stopID)
			if len(routes) == 0 {
				fmt.Println("No routes found for that stop.")
			} else {
				fmt.Println("Routes at stop:", strings.Join(routes, ", "))
			}
		case verb == "route" && arg != "":
			if stopID == "" {
				fmt.Println("Please enter a stop ID first (use: stop <STOP_ID>)")
				continue
			}
			a.showArrivals(stopID, arg)
		case verb == "all":
			if stopID == "" {
				fmt.Println("Please enter a stop ID first (use: stop <STOP_ID>)")
				continue
			}
			a.showArrivals(stopID, "")
		default:
			fmt.Println("Invalid command. Type 'help' for options.")
		}
	}
}

func (a *app) showArrivals(stopID, routeID string) {
	arrivals, err := a.rt.Arrivals(stopID, routeID)
	if err != nil {
		fmt.Println("Error fetching trip updates:", err)
		return
	}
	if len(arrivals) == 0 {
		fmt.Println("No upcoming arrivals for that stop and route.")
		return
	}
	now := time.Now()
	tbl := table.New("Route", "Arrival", "In", "Departure", "Delay")
	for _, ar := range arrivals {
		delay := "-"
		if ar.DelaySec != 0 {
			delay = fmt.Sprintf("%+ds", ar.DelaySec)
		}
		routeID := ar.RouteID
		if routeID == "" {
			// Some feeds omit route_id on the trip descriptor; trips.txt
			// can still resolve it.
			routeID = a.gtfs.RouteIDForTrip(ar.TripID)
		}
		tbl.AddRow(
			a.gtfs.RouteLabel(routeID),
			utils.ClockTimeFromUnixSeconds(ar.ArrivalTime),
			utils.MinutesUntil(ar.ArrivalTime, now),
			utils.ClockTimeFromUnixSeconds(ar.DepartureTime),
			delay,
		)
	}
	tbl.Print()
}

const stopFinderHelp = `
[Stop Finder]
1 - Search for a stop by name
2 - Find 3 closest stops by coordinates
3 - Get all stops served by a route
B - Back to previous menu
`

func (a *app) stopFinderMenu() {
	for {
		fmt.Print(stopFinderHelp, "\n")
		option, ok := a.prompt("StopFinder >> ")
		if !ok {
			return
		}
		switch strings.ToLower(option) {
		case "1":
			keyword, ok := a.prompt("Enter part of the stop name: ")
			if !ok {
				return
			}
			a.searchStops(keyword)
		case "2":
			a.findClosestStops()
		case "3":
			routeID, ok := a.prompt("Enter Route ID: ")
			if !ok {
				return
			}
			a.showStopsForRoute(routeID)
		case "b":
			return
		default:
			fmt.Println("Invalid option. Choose 1, 2, 3, or B.")
		}
	}
}

func (a *app) searchStops(keyword string) {
	matches := a.gtfs.SearchStopsByName(keyword)
	if len(matches) == 0 {
		fmt.Println("No stops found.")
		return
	}
	tbl := table.New("Stop ID", "Name")
	for _, s := range matches {
		tbl.AddRow(s.ID, s.Name)
	}
	tbl.Print()
}

func (a *app) findClosestStops() {
	latText, ok := a.prompt("Enter latitude: ")
	if !ok {
		return
	}
	lonText, ok := a.prompt("Enter longitude: ")
	if !ok {
		return
	}
	lat, errLat := strconv.ParseFloat(latText, 64)
	lon, errLon := strconv.ParseFloat(lonText, 64)
	if errLat != nil || errLon != nil {
		fmt.Println("Invalid latitude or longitude.")
		return
	}
	closest := a.gtfs.Nearest(lat, lon, 3)
	if len(closest) == 0 {
		fmt.Println("No stops loaded.")
		return
	}
	tbl := table.New("Stop ID", "Name", "Distance")
	for _, sd := range closest {
		tbl.AddRow(sd.Stop.ID, sd.Stop.Name, fmt.Sprintf("%.2f km", sd.KM))
	}
	tbl.Print()
}

func (a *app) showStopsForRoute(routeID string) {
	stops := a.gtfs.StopsForRoute(routeID)
	if len(stops) == 0 {
		fmt.Println("No stops found for that route.")
		return
	}
	tbl := table.New("Stop ID", "Name")
	for _, s := range stops {
		tbl.AddRow(s.ID, s.Name)
	}
	tbl.Print()
}
