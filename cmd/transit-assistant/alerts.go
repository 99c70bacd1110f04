package main

import (
	"fmt"
	"strings"

	"github.com/hfxtransit/assistant/utils"
)

const alertsHelp = `
[Alert Viewer]
Commands:
  add <ROUTE_ID>      - Filter alerts on another route (e.g., add 10)
  remove <ROUTE_ID>   - Drop a route from the filter
  list                - Show the current route filter
  show                - Display alerts for the filtered routes
  all                 - Display all alerts (ignore the filter)
  help                - Show this help message again
  back                - Return to main menu
`

// alertsMenu lets the user pick a route filter, then fetches and prints the
// matching service alerts. The filter starts from the tracked-route list.
func (a *app) alertsMenu() {
	fmt.Println("You can choose which routes to see alerts for, or type 'all' to see everything.")
	fmt.Print(alertsHelp, "\n")

	filter := a.tracked.List()

	for {
		command, ok := a.prompt("Alerts >> ")
		if !ok {
			return
		}
		verb, arg := splitCommand(command)
		switch {
		case verb == "back":
			fmt.Println("Returning to main menu.")
			return
		case verb == "help":
			fmt.Print(alertsHelp, "\n")
		case verb == "list":
			if len(filter) == 0 {
				fmt.Println("Route filter: (none - all alerts shown)")
			} else {
				fmt.Println("Route filter:", strings.Join(filter, ", "))
			}
		case verb == "add" && arg != "":
			route := strings.ToUpper(arg)
			if contains(filter, route) {
				fmt.Printf("%s is already in the filter.\n", route)
			} else {
				filter = append(filter, route)
				fmt.Printf("%s added (type 'show' to see alerts).\n", route)
			}
		case verb == "remove" && arg != "":
			route := strings.ToUpper(arg)
			if i := indexOf(filter, route); i >= 0 {
				filter = append(filter[:i], filter[i+1:]...)
				fmt.Printf("%s removed from the filter.\n", route)
			} else {
				fmt.Printf("%s is not in the filter.\n", route)
			}
		case verb == "all":
			a.showAlerts(nil)
		case verb == "show":
			a.showAlerts(filter)
		default:
			fmt.Println("Invalid command. Type 'help' for available options.")
		}
	}
}

func (a *app) showAlerts(filter []string) {
	alerts, err := a.rt.Alerts()
	if err != nil {
		fmt.Println("Error fetching alerts:", err)
		return
	}
	if len(alerts) == 0 {
		fmt.Println("No current alerts.")
		return
	}
	found := false
	for _, al := range alerts {
		if !al.AffectsAnyRoute(filter) {
			continue
		}
		found = true
		fmt.Println("----- ALERT -----")
		fmt.Println("Header:", al.Header)
		if al.Description != "" {
			fmt.Println("Description:", al.Description)
		}
		for _, p := range al.ActivePeriods {
			fmt.Println("Start:", utils.ClockTimeFromUnixSeconds(p.Start))
			fmt.Println("End:  ", utils.ClockTimeFromUnixSeconds(p.End))
		}
		if len(al.RouteIDs) > 0 {
			fmt.Println("Routes affected:", strings.Join(al.RouteIDs, ", "))
		}
		for _, stopID := range al.StopIDs {
			if stop, ok := a.gtfs.StopByID(stopID); ok {
				fmt.Printf("  - Stop %s (%s)\n", stopID, stop.Name)
			} else {
				fmt.Printf("  - Stop %s\n", stopID)
			}
		}
		fmt.Println()
	}
	if !found {
		fmt.Println("No alerts affecting your selected routes.")
	}
}

func contains(ids []string, id string) bool { return indexOf(ids, id) >= 0 }

func indexOf(ids []string, id string) int {
	for i, got := range ids {
		if got == id {
			return i
		}
	}
	return -1
}
