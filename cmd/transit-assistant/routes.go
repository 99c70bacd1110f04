package main

import (
	"fmt"
	"strings"
)

const routeManagerHelp = `
ROUTE MANAGER COMMANDS:
  add <ROUTE>    - Add a bus route to your tracking list (e.g., add 10)
  remove <ROUTE> - Remove a bus route from your tracking list
  list           - View all tracked routes
  help           - Show this help menu
  back           - Return to main menu
`

// routeManagerMenu edits the persisted tracked-route list.
func (a *app) routeManagerMenu() {
	fmt.Print(routeManagerHelp, "\n")

	for {
		command, ok := a.prompt("Route Manager >> ")
		if !ok {
			return
		}
		verb, arg := splitCommand(command)
		switch {
		case verb == "back":
			return
		case verb == "help":
			fmt.Print(routeManagerHelp, "\n")
		case verb == "add" && arg != "":
			a.addTrackedRoute(arg)
		case verb == "remove" && arg != "":
			a.removeTrackedRoute(arg)
		case verb == "list":
			a.listTrackedRoutes()
		default:
			fmt.Println("Invalid command. Type 'help' to see available commands.")
		}
	}
}

func (a *app) addTrackedRoute(routeID string) {
	route := strings.ToUpper(strings.TrimSpace(routeID))
	if _, ok := a.gtfs.RouteByID(route); !ok {
		fmt.Printf("Warning: %s is not in the static route table.\n", route)
	}
	added, err := a.tracked.Add(route)
	if err != nil {
		fmt.Println("Could not save tracked routes:", err)
		return
	}
	if added {
		fmt.Printf("Tracking %s.\n", route)
	} else {
		fmt.Printf("%s is already tracked.\n", route)
	}
}

func (a *app) removeTrackedRoute(routeID string) {
	route := strings.ToUpper(strings.TrimSpace(routeID))
	removed, err := a.tracked.Remove(route)
	if err != nil {
		fmt.Println("Could not save tracked routes:", err)
		return
	}
	if removed {
		fmt.Printf("Stopped tracking %s.\n", route)
	} else {
		fmt.Printf("%s is not being tracked.\n", route)
	}
}

func (a *app) listTrackedRoutes() {
	routes := a.tracked.List()
	if len(routes) == 0 {
		fmt.Println("Currently tracking: None")
		return
	}
	fmt.Println("Currently tracking:", strings.Join(routes, ", "))
}
