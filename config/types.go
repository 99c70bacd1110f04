package config

// RealtimeConfig contains the GTFS-Realtime feed endpoints
type RealtimeConfig struct {
	AlertsURL           string `yaml:"alertsURL" validate:"omitempty,url"`
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// StaticConfig contains the GTFS static archive location.
// Path points at a local zip; URL is used when Path is empty.
type StaticConfig struct {
	Path     string `yaml:"path"`
	URL      string `yaml:"url" validate:"omitempty,url"`
	AgencyID string `yaml:"agency_id"`
}

// TrackingConfig contains the tracked-routes persistence settings
type TrackingConfig struct {
	File string `yaml:"file"`
}

// GeocodeConfig contains the reverse-geocoding endpoint used to label
// vehicle positions with a street address
type GeocodeConfig struct {
	URL       string `yaml:"url" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Realtime RealtimeConfig `yaml:"realtime"`
	Static   StaticConfig   `yaml:"static"`
	Tracking TrackingConfig `yaml:"tracking"`
	Geocode  GeocodeConfig  `yaml:"geocode"`
}
