package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Tables the assistant needs. stops/routes/agency feed the browsing menus;
// trips/stop_times power the stop<->route lookups.
var requiredMembers = []string{"agency.txt", "stops.txt", "routes.txt"}

func isWantedMember(name string) bool {
	switch name {
	case "agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt":
		return true
	}
	return false
}

func (g *Index) loadFromStaticZip(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return g.loadFromLocalZip(tmp.Name())
}

// loadFromLocalZip opens a local GTFS zip file and consumes required CSVs.
func (g *Index) loadFromLocalZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open GTFS archive %s: %w", path, err)
	}
	defer zr.Close()
	seen := map[string]bool{}
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if isWantedMember(name) {
			if err := g.consumeCSV(f); err != nil {
				return fmt.Errorf("parse %s: %w", f.Name, err)
			}
			seen[name] = true
		}
	}
	for _, m := range requiredMembers {
		if !seen[m] {
			return fmt.Errorf("GTFS archive %s is missing %s", path, m)
		}
	}
	return nil
}

func (g *Index) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	switch strings.ToLower(f.Name) {
	case "agency.txt":
		agID := idx("agency_id")
		agName := idx("agency_name")
		agURL := idx("agency_url")
		agTZ := idx("agency_timezone")
		agLang := idx("agency_lang")
		agPhone := idx("agency_phone")
		for _, row := range rec[1:] {
			g.agencies = append(g.agencies, Agency{
				ID:       field(row, agID),
				Name:     field(row, agName),
				URL:      field(row, agURL),
				Timezone: field(row, agTZ),
				Lang:     field(row, agLang),
				Phone:    field(row, agPhone),
			})
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 || sN < 0 {
			return fmt.Errorf("stops.txt missing stop_id/stop_name columns")
		}
		for _, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				continue
			}
			lat, _ := strconv.ParseFloat(field(row, sLat), 64)
			lon, _ := strconv.ParseFloat(field(row, sLon), 64)
			if _, dup := g.stops[id]; !dup {
				g.stopOrder = append(g.stopOrder, id)
			}
			g.stops[id] = Stop{ID: id, Name: field(row, sN), Lat: lat, Lon: lon}
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		rAg := idx("agency_id")
		if rID < 0 {
			return fmt.Errorf("routes.txt missing route_id column")
		}
		for _, row := range rec[1:] {
			id := field(row, rID)
			if id == "" {
				continue
			}
			if _, dup := g.routes[id]; !dup {
				g.routeOrder = append(g.routeOrder, id)
			}
			g.routes[id] = Route{
				ID:        id,
				ShortName: field(row, rSN),
				LongName:  field(row, rLN),
				AgencyID:  field(row, rAg),
			}
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		if rID < 0 || tID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.tripToRoute[field(row, tID)] = field(row, rID)
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		if tID < 0 || sID < 0 || sq < 0 {
			return nil
		}
		tmp := map[string][]struct {
			stop string
			seq  int
		}{}
		for _, row := range rec[1:] {
			trip := field(row, tID)
			seq, _ := strconv.Atoi(field(row, sq))
			tmp[trip] = append(tmp[trip], struct {
				stop string
				seq  int
			}{field(row, sID), seq})
		}
		for trip, arr := range tmp {
			sort.Slice(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, 0, len(arr))
			for _, v := range arr {
				seqStops = append(seqStops, v.stop)
			}
			g.tripStops[trip] = seqStops
		}
	}
	return nil
}
