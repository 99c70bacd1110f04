/*
Package gtfs loads GTFS static data from a zip archive into an in-memory index.

The archive may be a local file or a URL; only the tables the assistant uses
are consumed (agency, stops, routes, trips, stop_times). Parse the archive
once at startup and keep the index for the session - it is read-only after
loading.

Basic usage:

	idx, err := gtfs.NewIndexFromConfig(config.Config.Static)
	if err != nil {
	    log.Fatal(err)
	}

	stop, ok := idx.StopByID("8643")
	routes := idx.RoutesForStop("8643")
	closest := idx.Nearest(44.6488, -63.5752, 3)

The index provides:

- Stops (stop_id -> name, lat/lon), in stops.txt row order
- Routes (route_id -> short/long name, agency)
- Agencies (agency.txt rows)
- Stop <-> route resolution through trips.txt + stop_times.txt
- Name search and nearest-stop ranking
*/
package gtfs
