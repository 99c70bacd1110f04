package gtfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hfxtransit/assistant/config"
)

// Index stores GTFS static data in memory for fast lookups
type Index struct {
	agencies []Agency

	stops     map[string]Stop // stop_id -> stop
	stopOrder []string        // stop_ids in stops.txt row order

	routes     map[string]Route // route_id -> route
	routeOrder []string         // route_ids in routes.txt row order

	tripToRoute map[string]string   // trip_id -> route_id
	tripStops   map[string][]string // trip_id -> ordered stop_ids
}

// NewIndex creates a new empty GTFS index
func NewIndex() *Index {
	return &Index{
		stops:       map[string]Stop{},
		routes:      map[string]Route{},
		tripToRoute: map[string]string{},
		tripStops:   map[string][]string{},
	}
}

// NewIndexFromConfig creates and loads a GTFS index from configuration.
// A local archive path wins over a download URL.
func NewIndexFromConfig(cfg config.StaticConfig) (*Index, error) {
	g := NewIndex()
	if cfg.Path != "" {
		if err := g.loadFromLocalZip(cfg.Path); err != nil {
			return nil, err
		}
		return g, nil
	}
	if cfg.URL != "" {
		if err := g.loadFromStaticZip(cfg.URL); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Accessor methods

func (g *Index) StopByID(stopID string) (Stop, bool) {
	s, ok := g.stops[stopID]
	return s, ok
}

func (g *Index) RouteByID(routeID string) (Route, bool) {
	r, ok := g.routes[routeID]
	if !ok {
		// Route ids are entered by hand; fall back to a case-insensitive match.
		for id, cand := range g.routes {
			if strings.EqualFold(id, routeID) {
				return cand, true
			}
		}
	}
	return r, ok
}

// AgencyByID returns the agency with the given id, matched
// case-insensitively.
func (g *Index) AgencyByID(agencyID string) (Agency, bool) {
	for _, ag := range g.agencies {
		if strings.EqualFold(ag.ID, agencyID) {
			return ag, true
		}
	}
	return Agency{}, false
}

func (g *Index) Agencies() []Agency {
	out := make([]Agency, len(g.agencies))
	copy(out, g.agencies)
	return out
}

// Stops returns all stops in stops.txt row order.
func (g *Index) Stops() []Stop {
	out := make([]Stop, 0, len(g.stopOrder))
	for _, id := range g.stopOrder {
		out = append(out, g.stops[id])
	}
	return out
}

// Routes returns all routes in routes.txt row order.
func (g *Index) Routes() []Route {
	out := make([]Route, 0, len(g.routeOrder))
	for _, id := range g.routeOrder {
		out = append(out, g.routes[id])
	}
	return out
}

func (g *Index) RouteIDForTrip(tripID string) string { return g.tripToRoute[tripID] }

// RouteLabel renders a route id with its names when the static snapshot
// knows the route. Unknown ids come back unchanged.
func (g *Index) RouteLabel(routeID string) string {
	r, ok := g.RouteByID(routeID)
	if !ok {
		return routeID
	}
	if r.LongName != "" {
		return fmt.Sprintf("%s (%s)", r.ShortName, r.LongName)
	}
	if r.ShortName != "" {
		return r.ShortName
	}
	return routeID
}

// RoutesForStop returns the sorted unique route ids serving a stop,
// resolved through trips.txt and stop_times.txt.
func (g *Index) RoutesForStop(stopID string) []string {
	seen := map[string]struct{}{}
	for tripID, stops := range g.tripStops {
		for _, sid := range stops {
			if sid != stopID {
				continue
			}
			if routeID, ok := g.tripToRoute[tripID]; ok {
				seen[routeID] = struct{}{}
			}
			break
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StopsForRoute returns all stops served by a route, in stops.txt row order.
func (g *Index) StopsForRoute(routeID string) []Stop {
	wanted := map[string]struct{}{}
	for tripID, rid := range g.tripToRoute {
		if !strings.EqualFold(rid, routeID) {
			continue
		}
		for _, sid := range g.tripStops[tripID] {
			wanted[sid] = struct{}{}
		}
	}
	out := make([]Stop, 0, len(wanted))
	for _, id := range g.stopOrder {
		if _, ok := wanted[id]; ok {
			out = append(out, g.stops[id])
		}
	}
	return out
}

// SearchStopsByName returns stops whose names contain the keyword,
// case-insensitively, in stops.txt row order.
func (g *Index) SearchStopsByName(keyword string) []Stop {
	kw := strings.ToLower(keyword)
	var out []Stop
	for _, id := range g.stopOrder {
		s := g.stops[id]
		if strings.Contains(strings.ToLower(s.Name), kw) {
			out = append(out, s)
		}
	}
	return out
}
