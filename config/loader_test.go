package config

import (
	"testing"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := applyDefaults(AppConfig{})

	if cfg.Realtime.AlertsURL != defaultAlertsURL {
		t.Errorf("alerts URL = %q, want Halifax default", cfg.Realtime.AlertsURL)
	}
	if cfg.Realtime.TripUpdatesURL != defaultTripUpdatesURL {
		t.Errorf("trip updates URL = %q, want Halifax default", cfg.Realtime.TripUpdatesURL)
	}
	if cfg.Realtime.VehiclePositionsURL != defaultVehiclePositionsURL {
		t.Errorf("vehicle positions URL = %q, want Halifax default", cfg.Realtime.VehiclePositionsURL)
	}
	if cfg.Realtime.TimeoutMS != defaultTimeoutMS {
		t.Errorf("timeout = %d, want %d", cfg.Realtime.TimeoutMS, defaultTimeoutMS)
	}
	if cfg.Static.Path != defaultStaticPath {
		t.Errorf("static path = %q, want %q", cfg.Static.Path, defaultStaticPath)
	}
	if cfg.Tracking.File != defaultTrackedRoutesFile {
		t.Errorf("tracking file = %q, want %q", cfg.Tracking.File, defaultTrackedRoutesFile)
	}
	if cfg.Geocode.URL != defaultGeocodeURL {
		t.Errorf("geocode URL = %q, want Nominatim default", cfg.Geocode.URL)
	}
	if cfg.Geocode.TimeoutMS != defaultGeocodeTimeoutMS {
		t.Errorf("geocode timeout = %d, want %d", cfg.Geocode.TimeoutMS, defaultGeocodeTimeoutMS)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	in := AppConfig{
		Realtime: RealtimeConfig{
			AlertsURL: "http://example.com/alerts.pb",
			TimeoutMS: 3000,
		},
		Static:   StaticConfig{URL: "http://example.com/gtfs.zip"},
		Tracking: TrackingConfig{File: "my_routes.txt"},
	}
	cfg := applyDefaults(in)

	if cfg.Realtime.AlertsURL != "http://example.com/alerts.pb" {
		t.Errorf("alerts URL overwritten: %q", cfg.Realtime.AlertsURL)
	}
	if cfg.Realtime.TimeoutMS != 3000 {
		t.Errorf("timeout overwritten: %d", cfg.Realtime.TimeoutMS)
	}
	// A static URL means no local path default should be injected.
	if cfg.Static.Path != "" {
		t.Errorf("static path = %q, want empty when URL set", cfg.Static.Path)
	}
	if cfg.Tracking.File != "my_routes.txt" {
		t.Errorf("tracking file overwritten: %q", cfg.Tracking.File)
	}
	// Unset URLs still get defaults.
	if cfg.Realtime.TripUpdatesURL != defaultTripUpdatesURL {
		t.Errorf("trip updates URL = %q, want default", cfg.Realtime.TripUpdatesURL)
	}
}
