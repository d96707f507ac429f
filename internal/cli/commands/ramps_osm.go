package commands

import (
	"FishLog/internal/config"
	"FishLog/internal/osm"
	"context"
	"fmt"
)

type rampsOSMCmd struct{}

func (rampsOSMCmd) Name() string        { return "ramps-osm" }
func (rampsOSMCmd) Description() string { return "Find slipways in OpenStreetMap" }
func (rampsOSMCmd) Usage() string       { return "ramps-osm [--radius km] <lat,lon> | ramps-osm --sweden" }

func (rampsOSMCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("ramps-osm")
	radius := fs.Float64("radius", 50, "search radius, km")
	sweden := fs.Bool("sweden", false, "whole Sweden (slow)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *sweden == (fs.NArg() == 1) || fs.NArg() > 1 {
		return ErrUsage
	}

	client := osm.NewClient(cfg, Logger)
	var (
		ramps []osm.BoatRamp
		err   error
	)
	if *sweden {
		ramps, err = client.Sweden(ctx)
	} else {
		lat, lon, perr := parseLatLon(fs.Arg(0))
		if perr != nil {
			return perr
		}
		ramps, err = client.Nearby(ctx, lat, lon, *radius)
	}
	if err != nil {
		return err
	}

	if len(ramps) == 0 {
		fmt.Fprintln(Out, "No slipways found")
		return nil
	}
	for _, r := range ramps {
		name := r.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(Out, "- osm:%d  %s  (%.5f, %.5f)\n", r.ID, name, r.Lat(), r.Lon())
	}
	fmt.Fprintf(Out, "Total: %d\n", len(ramps))
	return nil
}

func init() { RegisterCmd(rampsOSMCmd{}) }
