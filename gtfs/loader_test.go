package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type zipBuilder struct {
	members map[string]string
}

func newZipBuilder() *zipBuilder {
	return &zipBuilder{members: map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone,agency_lang,agency_phone\n" +
			"HRM,Halifax Transit,https://www.halifax.ca/transportation/halifax-transit,America/Halifax,en,311\n",
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"6087,Barrington St and Duke St,44.6497,-63.5746\n" +
			"8643,Scotia Square Terminal,44.6503,-63.5758\n" +
			"7285,Robie St and Young St,44.6595,-63.6021\n",
		"routes.txt": "route_id,agency_id,route_short_name,route_long_name\n" +
			"1,HRM,1,Spring Garden\n" +
			"10,HRM,10,Dalhousie\n",
		"trips.txt": "route_id,service_id,trip_id\n" +
			"1,WK,trip-1a\n" +
			"10,WK,trip-10a\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"trip-1a,08:00:00,08:00:00,6087,1\n" +
			"trip-1a,08:05:00,08:05:00,8643,2\n" +
			"trip-10a,09:00:00,09:00:00,8643,1\n" +
			"trip-10a,09:10:00,09:10:00,7285,2\n",
	}}
}

func (b *zipBuilder) set(name, content string) *zipBuilder {
	b.members[name] = content
	return b
}

func (b *zipBuilder) remove(name string) *zipBuilder {
	delete(b.members, name)
	return b
}

// write builds the archive and writes it to a temp file, returning its path.
func (b *zipBuilder) write(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range b.members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip member %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip member %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	path := filepath.Join(t.TempDir(), "gtfs.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write zip file: %v", err)
	}
	return path
}

func loadTestIndex(t *testing.T, b *zipBuilder) *Index {
	t.Helper()
	g := NewIndex()
	if err := g.loadFromLocalZip(b.write(t)); err != nil {
		t.Fatalf("load GTFS fixture: %v", err)
	}
	return g
}

func TestLoad_FieldForField(t *testing.T) {
	g := loadTestIndex(t, newZipBuilder())

	wantAgency := Agency{
		ID:       "HRM",
		Name:     "Halifax Transit",
		URL:      "https://www.halifax.ca/transportation/halifax-transit",
		Timezone: "America/Halifax",
		Lang:     "en",
		Phone:    "311",
	}
	agencies := g.Agencies()
	if len(agencies) != 1 {
		t.Fatalf("got %d agencies, want 1", len(agencies))
	}
	if agencies[0] != wantAgency {
		t.Errorf("agency = %+v, want %+v", agencies[0], wantAgency)
	}

	wantStops := []Stop{
		{ID: "6087", Name: "Barrington St and Duke St", Lat: 44.6497, Lon: -63.5746},
		{ID: "8643", Name: "Scotia Square Terminal", Lat: 44.6503, Lon: -63.5758},
		{ID: "7285", Name: "Robie St and Young St", Lat: 44.6595, Lon: -63.6021},
	}
	if got := g.Stops(); !reflect.DeepEqual(got, wantStops) {
		t.Errorf("stops = %+v, want %+v", got, wantStops)
	}

	wantRoutes := []Route{
		{ID: "1", ShortName: "1", LongName: "Spring Garden", AgencyID: "HRM"},
		{ID: "10", ShortName: "10", LongName: "Dalhousie", AgencyID: "HRM"},
	}
	if got := g.Routes(); !reflect.DeepEqual(got, wantRoutes) {
		t.Errorf("routes = %+v, want %+v", got, wantRoutes)
	}
}

func TestLoad_MissingRequiredMember(t *testing.T) {
	for _, member := range []string{"agency.txt", "stops.txt", "routes.txt"} {
		t.Run(member, func(t *testing.T) {
			g := NewIndex()
			err := g.loadFromLocalZip(newZipBuilder().remove(member).write(t))
			if err == nil {
				t.Fatalf("expected error for archive without %s", member)
			}
		})
	}
}

func TestLoad_MissingArchive(t *testing.T) {
	g := NewIndex()
	if err := g.loadFromLocalZip(filepath.Join(t.TempDir(), "nope.zip")); err == nil {
		t.Fatal("expected error for missing archive")
	}
}

func TestLoad_OptionalTripsAbsent(t *testing.T) {
	b := newZipBuilder().remove("trips.txt").remove("stop_times.txt")
	g := loadTestIndex(t, b)

	if len(g.Stops()) != 3 {
		t.Errorf("stops not loaded without trips.txt")
	}
	if got := g.RoutesForStop("8643"); len(got) != 0 {
		t.Errorf("RoutesForStop = %v, want empty without stop_times", got)
	}
}

func TestStopByID(t *testing.T) {
	g := loadTestIndex(t, newZipBuilder())

	if s, ok := g.StopByID("8643"); !ok || s.Name != "Scotia Square Terminal" {
		t.Errorf("StopByID(8643) = %+v, %v", s, ok)
	}
	if _, ok := g.StopByID("0000"); ok {
		t.Error("StopByID(0000) should miss")
	}
}

func TestRouteByID_CaseInsensitive(t *testing.T) {
	b := newZipBuilder().set("routes.txt",
		"route_id,agency_id,route_short_name,route_long_name\nSH1,HRM,SH1,Sheldrake\n")
	g := loadTestIndex(t, b)

	if _, ok := g.RouteByID("sh1"); !ok {
		t.Error("RouteByID should match route ids case-insensitively")
	}
}

func TestRoutesForStop(t *testing.T) {
	g := loadTestIndex(t, newZipBuilder())

	tests := []struct {
		stopID string
		want   []string
	}{
		{"6087", []string{"1"}},
		{"8643", []string{"1", "10"}}, // both trips call here
		{"7285", []string{"10"}},
		{"0000", nil},
	}
	for _, tt := range tests {
		t.Run(tt.stopID, func(t *testing.T) {
			got := g.RoutesForStop(tt.stopID)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RoutesForStop(%s) = %v, want %v", tt.stopID, got, tt.want)
			}
		})
	}
}

func TestStopsForRoute(t *testing.T) {
	g := loadTestIndex(t, newZipBuilder())

	got := g.StopsForRoute("10")
	wantIDs := []string{"8643", "7285"} // stops.txt row order
	if len(got) != len(wantIDs) {
		t.Fatalf("StopsForRoute(10) returned %d stops, want %d", len(got), len(wantIDs))
	}
	for i, s := range got {
		if s.ID != wantIDs[i] {
			t.Errorf("stop[%d] = %s, want %s", i, s.ID, wantIDs[i])
		}
	}

	if got := g.StopsForRoute("99"); len(got) != 0 {
		t.Errorf("StopsForRoute(99) = %v, want empty", got)
	}
}

func TestSearchStopsByName(t *testing.T) {
	g := loadTestIndex(t, newZipBuilder())

	tests := []struct {
		keyword string
		wantIDs []string
	}{
		{"barrington", []string{"6087"}},
		{"ST AND", []string{"6087", "7285"}},
		{"terminal", []string{"8643"}},
		{"gottingen", nil},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got := g.SearchStopsByName(tt.keyword)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d matches, want %d", len(got), len(tt.wantIDs))
			}
			for i, s := range got {
				if s.ID != tt.wantIDs[i] {
					t.Errorf("match[%d] = %s, want %s", i, s.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
