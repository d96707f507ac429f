package commands

import (
	"FishLog/internal/config"
	"FishLog/internal/weather"
	"context"
	"fmt"
)

type weatherCmd struct{}

func (weatherCmd) Name() string        { return "weather" }
func (weatherCmd) Description() string { return "Show current weather for a position" }
func (weatherCmd) Usage() string       { return "weather <lat,lon>" }

func (weatherCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	lat, lon, err := parseLatLon(args[0])
	if err != nil {
		return err
	}
	w, err := weather.NewProvider(cfg, Logger).Current(ctx, lat, lon)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s, %.1f°C\n", w.Conditions, w.Temperature)
	fmt.Fprintf(Out, "Wind:     %.1f m/s from %.0f°\n", w.WindSpeed, w.WindDirection)
	fmt.Fprintf(Out, "Pressure: %.0f hPa\n", w.Pressure)
	fmt.Fprintf(Out, "Humidity: %.0f%%\n", w.Humidity)
	fmt.Fprintf(Out, "Source:   %s\n", w.Source)
	return nil
}

func init() { RegisterCmd(weatherCmd{}) }
