package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Halifax Transit public feeds, used when no config.yml is present.
const (
	defaultAlertsURL           = "http://gtfs.halifax.ca/realtime/Alert/Alerts.pb"
	defaultTripUpdatesURL      = "http://gtfs.halifax.ca/realtime/TripUpdate/TripUpdates.pb"
	defaultVehiclePositionsURL = "http://gtfs.halifax.ca/realtime/Vehicle/VehiclePositions.pb"
	defaultStaticPath          = "data/Static_data.zip"
	defaultTrackedRoutesFile   = "tracked_routes.txt"
	defaultTimeoutMS           = 15000
	defaultGeocodeURL          = "https://nominatim.openstreetmap.org/reverse"
	defaultGeocodeTimeoutMS    = 10000
)

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error; the Halifax defaults apply.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	cfg := AppConfig{}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		v := validator.New()
		if err := v.Struct(cfg); err != nil {
			return err
		}
	}
	Config = applyDefaults(cfg)
	return nil
}

func applyDefaults(cfg AppConfig) AppConfig {
	if cfg.Realtime.AlertsURL == "" {
		cfg.Realtime.AlertsURL = defaultAlertsURL
	}
	if cfg.Realtime.TripUpdatesURL == "" {
		cfg.Realtime.TripUpdatesURL = defaultTripUpdatesURL
	}
	if cfg.Realtime.VehiclePositionsURL == "" {
		cfg.Realtime.VehiclePositionsURL = defaultVehiclePositionsURL
	}
	if cfg.Realtime.TimeoutMS == 0 {
		cfg.Realtime.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Static.Path == "" && cfg.Static.URL == "" {
		cfg.Static.Path = defaultStaticPath
	}
	if cfg.Tracking.File == "" {
		cfg.Tracking.File = defaultTrackedRoutesFile
	}
	if cfg.Geocode.URL == "" {
		cfg.Geocode.URL = defaultGeocodeURL
	}
	if cfg.Geocode.TimeoutMS == 0 {
		cfg.Geocode.TimeoutMS = defaultGeocodeTimeoutMS
	}
	return cfg
}
