package gtfsrt

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/hfxtransit/assistant/config"
)

// Client fetches GTFS-RT protobuf feeds over HTTP and decodes them into
// simplified records. Every call is a fresh fetch; nothing is cached.
type Client struct {
	httpClient *http.Client

	alertsURL           string
	tripUpdatesURL      string
	vehiclePositionsURL string
}

// NewClient creates a GTFS-RT client for the configured feed endpoints
func NewClient(cfg config.RealtimeConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &Client{
		httpClient:          &http.Client{Timeout: timeout},
		alertsURL:           cfg.AlertsURL,
		tripUpdatesURL:      cfg.TripUpdatesURL,
		vehiclePositionsURL: cfg.VehiclePositionsURL,
	}
}

func (c *Client) fetchFeed(url string) (*gtfsrtpb.FeedMessage, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("decode feed from %s: %w", url, err)
	}
	return &fm, nil
}

// Alerts fetches and decodes the service alerts feed
func (c *Client) Alerts() ([]Alert, error) {
	fm, err := c.fetchFeed(c.alertsURL)
	if err != nil {
		return nil, err
	}
	var alerts []Alert
	for _, e := range fm.Entity {
		if e.Alert == nil {
			continue
		}
		a := e.Alert
		al := Alert{}
		if e.Id != nil {
			al.ID = *e.Id
		}
		al.Header = translatedText(a.HeaderText)
		al.Description = translatedText(a.DescriptionText)
		if a.Cause != nil {
			al.Cause = a.Cause.String()
		}
		if a.Effect != nil {
			al.Effect = a.Effect.String()
		}
		for _, ap := range a.ActivePeriod {
			p := ActivePeriod{}
			if ap.Start != nil {
				p.Start = int64(*ap.Start)
			}
			if ap.End != nil {
				p.End = int64(*ap.End)
			}
			al.ActivePeriods = append(al.ActivePeriods, p)
		}
		for _, ie := range a.InformedEntity {
			if ie.RouteId != nil && *ie.RouteId != "" {
				al.RouteIDs = append(al.RouteIDs, strings.ToUpper(*ie.RouteId))
			}
			if ie.StopId != nil && *ie.StopId != "" {
				al.StopIDs = append(al.StopIDs, *ie.StopId)
			}
		}
		alerts = append(alerts, al)
	}
	return alerts, nil
}

// Arrivals fetches the trip updates feed and returns predicted calls at the
// given stop, sorted by arrival time. An empty routeID returns all routes.
func (c *Client) Arrivals(stopID, routeID string) ([]Arrival, error) {
	fm, err := c.fetchFeed(c.tripUpdatesURL)
	if err != nil {
		return nil, err
	}
	var arrivals []Arrival
	for _, e := range fm.Entity {
		if e.TripUpdate == nil || e.TripUpdate.Trip == nil {
			continue
		}
		tu := e.TripUpdate
		var tripID, tripRoute string
		if tu.Trip.TripId != nil {
			tripID = *tu.Trip.TripId
		}
		if tu.Trip.RouteId != nil {
			tripRoute = *tu.Trip.RouteId
		}
		if routeID != "" && !strings.EqualFold(tripRoute, routeID) {
			continue
		}
		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil || *stu.StopId != stopID {
				continue
			}
			ar := Arrival{TripID: tripID, RouteID: tripRoute, StopID: stopID}
			if stu.StopSequence != nil {
				ar.StopSequence = *stu.StopSequence
			}
			if stu.Arrival != nil {
				if stu.Arrival.Time != nil {
					ar.ArrivalTime = *stu.Arrival.Time
				}
				if stu.Arrival.Delay != nil {
					ar.DelaySec = *stu.Arrival.Delay
				}
			}
			if stu.Departure != nil && stu.Departure.Time != nil {
				ar.DepartureTime = *stu.Departure.Time
			}
			arrivals = append(arrivals, ar)
		}
	}
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime })
	return arrivals, nil
}

// Vehicles fetches the vehicle positions feed. A non-empty routeIDs filter
// keeps only vehicles on those routes (case-insensitive).
func (c *Client) Vehicles(routeIDs []string) ([]VehiclePosition, error) {
	fm, err := c.fetchFeed(c.vehiclePositionsURL)
	if err != nil {
		return nil, err
	}
	var vehicles []VehiclePosition
	for _, e := range fm.Entity {
		if e.Vehicle == nil {
			continue
		}
		v := e.Vehicle
		vp := VehiclePosition{}
		if v.Vehicle != nil && v.Vehicle.Id != nil {
			vp.VehicleID = *v.Vehicle.Id
		}
		if v.Trip != nil {
			if v.Trip.TripId != nil {
				vp.TripID = *v.Trip.TripId
			}
			if v.Trip.RouteId != nil {
				vp.RouteID = *v.Trip.RouteId
			}
		}
		if len(routeIDs) > 0 && !matchesAnyRoute(vp.RouteID, routeIDs) {
			continue
		}
		if v.Position != nil {
			if v.Position.Latitude != nil {
				vp.Lat = float64(*v.Position.Latitude)
			}
			if v.Position.Longitude != nil {
				vp.Lon = float64(*v.Position.Longitude)
			}
			if v.Position.Bearing != nil {
				vp.Bearing = float64(*v.Position.Bearing)
			}
		}
		if v.Timestamp != nil {
			vp.Timestamp = int64(*v.Timestamp)
		}
		vehicles = append(vehicles, vp)
	}
	return vehicles, nil
}

func matchesAnyRoute(routeID string, filter []string) bool {
	for _, want := range filter {
		if strings.EqualFold(routeID, want) {
			return true
		}
	}
	return false
}

// translatedText extracts best-effort text from a GTFS-RT TranslatedString,
// joining all translations the way the feed producer ordered them.
func translatedText(ts *gtfsrtpb.TranslatedString) string {
	if ts == nil {
		return ""
	}
	parts := make([]string, 0, len(ts.Translation))
	for _, tr := range ts.Translation {
		if tr.Text != nil && *tr.Text != "" {
			parts = append(parts, *tr.Text)
		}
	}
	return strings.Join(parts, "\n")
}
