package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hfxtransit/assistant/config"
	"github.com/hfxtransit/assistant/geocode"
)

func geocodeApp(url string) *app {
	return &app{geocoder: geocode.NewClient(config.GeocodeConfig{URL: url, TimeoutMS: 2000})}
}

func TestVehicleLocation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			"known address",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"display_name":"Gottingen St, Halifax, NS"}`))
			},
			"Gottingen St, Halifax, NS",
		},
		{
			"nothing nearby",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			"Unknown location",
		},
		{
			"geocoder down",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
			},
			"(geocoding failed)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			if got := geocodeApp(srv.URL).vehicleLocation(44.65, -63.58); got != tt.want {
				t.Errorf("vehicleLocation = %q, want %q", got, tt.want)
			}
		})
	}
}
