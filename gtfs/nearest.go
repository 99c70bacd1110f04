package gtfs

import (
	"math"
	"sort"
)

const earthRadiusKM = 6371.0

// StopDistance pairs a stop with its distance from a query point.
type StopDistance struct {
	Stop Stop
	KM   float64
}

// Haversine returns the great-circle distance in kilometers between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// Nearest returns the n stops closest to the query point, ordered by
// non-decreasing distance. Ties keep stops.txt row order. No spatial index:
// a linear scan is fine at the few-thousand-stop scale of one agency.
func (g *Index) Nearest(lat, lon float64, n int) []StopDistance {
	out := make([]StopDistance, 0, len(g.stopOrder))
	for _, id := range g.stopOrder {
		s := g.stops[id]
		out = append(out, StopDistance{Stop: s, KM: Haversine(lat, lon, s.Lat, s.Lon)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].KM < out[j].KM })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
