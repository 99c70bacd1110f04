package gtfs

// Stop is a single row of stops.txt. Immutable once loaded.
type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Route is a single row of routes.txt. Immutable once loaded.
type Route struct {
	ID        string
	ShortName string
	LongName  string
	AgencyID  string
}

// Agency is a single row of agency.txt.
type Agency struct {
	ID       string
	Name     string
	URL      string
	Timezone string
	Lang     string
	Phone    string
}
