package gtfsrt

import "strings"

// ActivePeriod is an alert validity window in Unix seconds.
// A zero Start or End means the window is open on that side.
type ActivePeriod struct {
	Start int64
	End   int64
}

// Alert is a simplified representation of a GTFS-RT service alert
type Alert struct {
	ID            string
	Header        string
	Description   string
	Cause         string
	Effect        string
	ActivePeriods []ActivePeriod
	RouteIDs      []string
	StopIDs       []string
}

// AffectsAnyRoute reports whether the alert names any of the given route ids.
// Comparison is case-insensitive; an empty filter matches every alert.
func (a Alert) AffectsAnyRoute(routeIDs []string) bool {
	if len(routeIDs) == 0 {
		return true
	}
	for _, want := range routeIDs {
		for _, got := range a.RouteIDs {
			if strings.EqualFold(want, got) {
				return true
			}
		}
	}
	return false
}

// Arrival is one predicted stop call from the TripUpdate feed
type Arrival struct {
	TripID        string
	RouteID       string
	StopID        string
	StopSequence  uint32
	ArrivalTime   int64
	DepartureTime int64
	DelaySec      int32
}

// VehiclePosition is one live vehicle report from the VehiclePositions feed
type VehiclePosition struct {
	VehicleID string
	TripID    string
	RouteID   string
	Lat       float64
	Lon       float64
	Bearing   float64
	Timestamp int64
}
