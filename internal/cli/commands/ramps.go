package commands

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/config"
	"context"
	"fmt"
	"strconv"
	"strings"
)

type rampsCmd struct{}

func (rampsCmd) Name() string        { return "ramps" }
func (rampsCmd) Description() string { return "List boat ramps, optionally nearest to a position" }
func (rampsCmd) Usage() string       { return "ramps [--near lat,lon] [--limit n]" }

func (rampsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("ramps")
	near := fs.String("near", "", "position lat,lon")
	limit := fs.Int("limit", 10, "max ramps with --near")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	app.BoatRamps.Refresh(ctx)
	if msg := app.BoatRamps.Err(); msg != "" {
		return errFromService(msg, "")
	}

	if *near == "" {
		list := app.BoatRamps.BoatRamps()
		if len(list) == 0 {
			fmt.Fprintln(Out, "No boat ramps yet")
			return nil
		}
		for _, r := range list {
			fmt.Fprintf(Out, "- %s\n", rampLine(r))
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	}

	lat, lon, err := parseLatLon(*near)
	if err != nil {
		return err
	}
	for _, rd := range app.BoatRamps.Nearest(lat, lon, *limit) {
		fmt.Fprintf(Out, "- %6.1f km  %s\n", rd.Distance/1000, rampLine(rd.Ramp))
	}
	return nil
}

func rampLine(r model.BoatRamp) string {
	parts := []string{r.ID, r.Name}
	if r.WaterName != "" {
		parts = append(parts, r.WaterName)
	}
	parts = append(parts,
		fmt.Sprintf("(%.5f, %.5f)", r.Latitude, r.Longitude),
		"parking:"+boolMark(r.Parking),
		"fee:"+boolMark(r.Fee),
	)
	if r.Verified {
		parts = append(parts, "verified")
	}
	if r.Description != nil && *r.Description != "" {
		parts = append(parts, strconv.Quote(*r.Description))
	}
	return strings.Join(parts, "  ")
}

type rampAddCmd struct{}

func (rampAddCmd) Name() string        { return "ramp-add" }
func (rampAddCmd) Description() string { return "Add a boat ramp" }
func (rampAddCmd) Usage() string {
	return "ramp-add [--water name] [--desc text] [--parking] [--fee] <name> <lat,lon>"
}

func (rampAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("ramp-add")
	water := fs.String("water", "", "water name")
	desc := fs.String("desc", "", "description")
	parking := fs.Bool("parking", false, "parking available")
	fee := fs.Bool("fee", false, "launch fee")
	if err := fs.Parse(args); err != nil || fs.NArg() != 2 {
		return ErrUsage
	}
	name := strings.TrimSpace(fs.Arg(0))
	if name == "" {
		return ErrUsage
	}
	lat, lon, err := parseLatLon(fs.Arg(1))
	if err != nil {
		return err
	}

	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	app.BoatRamps.Refresh(ctx)
	saved, ok := app.BoatRamps.Add(ctx, model.BoatRampForm{
		Name:        name,
		Latitude:    lat,
		Longitude:   lon,
		WaterName:   *water,
		Description: *desc,
		Parking:     *parking,
		Fee:         *fee,
	})
	if !ok {
		return errFromService(app.BoatRamps.Err(), "could not save boat ramp")
	}
	if app.BoatRamps.Remote() && saved.AddedByUserID == model.LocalOwner {
		fmt.Fprintln(Out, "Not logged in: ramp saved on this device only")
	}
	fmt.Fprintf(Out, "Saved: %s\n", rampLine(*saved))
	return nil
}

func init() {
	RegisterCmd(rampsCmd{})
	RegisterCmd(rampAddCmd{})
}
