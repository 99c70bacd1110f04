package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/hfxtransit/assistant/geocode"
	"github.com/hfxtransit/assistant/gtfs"
	"github.com/hfxtransit/assistant/gtfsrt"
	"github.com/hfxtransit/assistant/tracking"
)

// app holds the session state shared by every menu: the read-only static
// index, the realtime client, and the persisted tracked-route list.
type app struct {
	gtfs     *gtfs.Index
	rt       *gtfsrt.Client
	tracked  *tracking.Store
	geocoder *geocode.Client
	agencyID string
	in       *bufio.Scanner
}

const mainMenu = `
=== Halifax Transit Assistant ===
1. View Service Alerts
2. Track a Bus
3. Get Route Updates (Arrivals)
4. Manage Tracked Routes
5. Agency Info
H. Help
Q. Quit
`

const mainHelp = `
MAIN MENU OPTIONS:
1 - View Service Alerts for all routes or just the ones you track
2 - Track a Bus: view live vehicle positions on tracked routes
3 - Get Route Updates: check upcoming arrivals by stop and route
4 - Manage Tracked Routes: add/remove routes from your tracked list
5 - Agency Info
H - Help
Q - Quit the application
`

func (a *app) run() {
	fmt.Println(`
Welcome to the Halifax Transit Assistant!
This tool allows you to:
- View current service alerts affecting Halifax Transit
- Track buses on selected routes
- Get upcoming arrival times for stops
- Manage your list of routes of interest`)

	for {
		fmt.Print(mainMenu, "\n")
		choice, ok := a.prompt("Select an option: ")
		if !ok {
			return
		}
		switch strings.ToLower(choice) {
		case "q", "quit":
			fmt.Println("Exiting...")
			return
		case "1":
			a.alertsMenu()
		case "2":
			a.vehiclesMenu()
		case "3":
			a.arrivalsMenu()
		case "4":
			a.routeManagerMenu()
		case "5":
			a.showAgencyInfo()
		case "h":
			fmt.Print(mainHelp, "\n")
		default:
			fmt.Println("Invalid choice. Try again.")
		}
	}
}

// prompt prints a prompt and reads one trimmed line. ok is false on EOF.
func (a *app) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// splitCommand splits a menu line into a lower-cased verb and its argument.
// The argument keeps its case; stop ids may be case sensitive.
func splitCommand(line string) (verb, arg string) {
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(arg)
}

func (a *app) showAgencyInfo() {
	agencies := a.gtfs.Agencies()
	if len(agencies) == 0 {
		fmt.Println("No agency info found.")
		return
	}
	ag := agencies[0]
	if a.agencyID != "" {
		configured, ok := a.gtfs.AgencyByID(a.agencyID)
		if !ok {
			fmt.Printf("Agency %s is not in the static data.\n", a.agencyID)
			return
		}
		ag = configured
	}
	fmt.Println("\n=== Agency Information ===")
	fmt.Println("Agency Name:", ag.Name)
	fmt.Println("Agency URL:", ag.URL)
	fmt.Println("Timezone:", ag.Timezone)
	fmt.Println("Agency Language:", ag.Lang)
	fmt.Println("Agency Phone Number:", ag.Phone)
}
