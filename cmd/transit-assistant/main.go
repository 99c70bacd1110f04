package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/hfxtransit/assistant/config"
	"github.com/hfxtransit/assistant/geocode"
	"github.com/hfxtransit/assistant/gtfs"
	"github.com/hfxtransit/assistant/gtfsrt"
	"github.com/hfxtransit/assistant/tracking"
	"github.com/hfxtransit/assistant/utils"
)

func main() {
	staticOverride := flag.String("static", "", "GTFS static zip path or URL (overrides config)")
	trackedOverride := flag.String("tracked", "", "tracked routes file (overrides config)")
	flag.Parse()

	utils.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := config.Config
	if *staticOverride != "" {
		if _, err := os.Stat(*staticOverride); err == nil {
			cfg.Static.Path = *staticOverride
			cfg.Static.URL = ""
		} else {
			cfg.Static.Path = ""
			cfg.Static.URL = *staticOverride
		}
	}
	if *trackedOverride != "" {
		cfg.Tracking.File = *trackedOverride
	}

	// The static snapshot is the session's backbone; without it nothing
	// else is meaningful.
	idx, err := gtfs.NewIndexFromConfig(cfg.Static)
	if err != nil {
		log.Fatalf("load GTFS static data: %v", err)
	}

	a := &app{
		gtfs:     idx,
		rt:       gtfsrt.NewClient(cfg.Realtime),
		tracked:  tracking.NewStore(cfg.Tracking.File),
		geocoder: geocode.NewClient(cfg.Geocode),
		agencyID: cfg.Static.AgencyID,
		in:       bufio.NewScanner(os.Stdin),
	}
	if err := a.tracked.Load(); err != nil {
		log.Printf("load tracked routes: %v (starting with an empty list)", err)
	}
	a.run()
}
