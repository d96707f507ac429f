package commands

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/model/view"
	"FishLog/internal/config"
	"context"
	"fmt"
)

type catchEditCmd struct{}

func (catchEditCmd) Name() string        { return "catch-edit" }
func (catchEditCmd) Description() string { return "Change a catch; omitted flags keep their values" }
func (catchEditCmd) Usage() string {
	return "catch-edit [--species id] [--length cm] [--weight g] [--at time] [--at-pos lat,lon] [--water name] [--notes text] [--photo file] [--public|--private] [--weather] <id>"
}

func (catchEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("catch-edit")
	f := bindCatchFlags(fs)
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	id := fs.Arg(0)

	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	app.Catches.Refresh(ctx)
	if msg := app.Catches.Err(); msg != "" {
		return errFromService(msg, "")
	}
	var existing *model.Catch
	for _, c := range app.Catches.Catches() {
		if c.ID == id {
			existing = &c
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("catch not found: %s", id)
	}

	form := formFromCatch(*existing)
	if err := f.apply(fs, &form); err != nil {
		return err
	}
	weather := weatherFromCatch(*existing)
	if f.weather {
		w, err := fetchWeather(ctx, app, form)
		if err != nil {
			fmt.Fprintf(Out, "Weather unavailable, keeping previous: %v\n", err)
		} else {
			weather = w
		}
	}

	saved, ok := app.Catches.Update(ctx, id, form, weather)
	if !ok {
		return errFromService(app.Catches.Err(), "could not update catch")
	}
	fmt.Fprintln(Out, "Updated:")
	fmt.Fprintf(Out, "  %s\n", view.FromCatch(*saved, app.Species.Name).Line())
	return nil
}

// formFromCatch заполняет форму текущими значениями улова.
func formFromCatch(c model.Catch) model.CatchForm {
	form := model.CatchForm{
		Species:     c.Species,
		LengthCm:    c.LengthCm,
		WeightGrams: c.WeightGrams,
		CaughtAt:    c.CaughtAt,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		IsPublic:    c.IsPublic,
	}
	if c.WaterName != nil {
		form.WaterName = *c.WaterName
	}
	if c.Notes != nil {
		form.Notes = *c.Notes
	}
	return form
}

// weatherFromCatch восстанавливает снимок, если он был сохранён целиком.
func weatherFromCatch(c model.Catch) *model.WeatherSnapshot {
	if c.WeatherTemp == nil || c.WeatherWind == nil || c.WeatherConditions == nil || c.WeatherPressure == nil {
		return nil
	}
	return &model.WeatherSnapshot{
		Temp:       *c.WeatherTemp,
		Wind:       *c.WeatherWind,
		Conditions: *c.WeatherConditions,
		Pressure:   *c.WeatherPressure,
	}
}

func init() { RegisterCmd(catchEditCmd{}) }
