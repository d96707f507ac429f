package commands

import (
	"FishLog/internal/cli/bootstrap"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/model/view"
	"FishLog/internal/config"
	"context"
	"flag"
	"fmt"
	"strings"
	"time"
)

// catchFlags: флаги формы улова, общие для catch-add и catch-edit.
type catchFlags struct {
	species, length, weight, at, where, water, notes, photo string
	private, public, weather                                bool
}

func bindCatchFlags(fs *flag.FlagSet) *catchFlags {
	f := &catchFlags{}
	fs.StringVar(&f.species, "species", "", "species id, see `species`")
	fs.StringVar(&f.length, "length", "", "length, cm")
	fs.StringVar(&f.weight, "weight", "", "weight, g")
	fs.StringVar(&f.at, "at", "", "time of catch, YYYY-MM-DDTHH:MM")
	fs.StringVar(&f.where, "at-pos", "", "position lat,lon")
	fs.StringVar(&f.water, "water", "", "water name")
	fs.StringVar(&f.notes, "notes", "", "notes")
	fs.StringVar(&f.photo, "photo", "", "path to photo")
	fs.BoolVar(&f.private, "private", false, "hide from public feed")
	fs.BoolVar(&f.public, "public", false, "show in public feed")
	fs.BoolVar(&f.weather, "weather", false, "attach current weather for the position")
	return f
}

// apply переносит заданные флаги в форму; незаданные поля формы не трогает.
func (f *catchFlags) apply(fs *flag.FlagSet, form *model.CatchForm) error {
	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "species":
			form.Species = strings.TrimSpace(f.species)
		case "length":
			form.LengthCm, err = optFloat("length", f.length)
		case "weight":
			form.WeightGrams, err = optFloat("weight", f.weight)
		case "at":
			form.CaughtAt, err = parseTime(f.at)
		case "at-pos":
			if f.where == "" {
				form.Latitude, form.Longitude = nil, nil
				return
			}
			var lat, lon float64
			lat, lon, err = parseLatLon(f.where)
			form.Latitude, form.Longitude = &lat, &lon
		case "water":
			form.WaterName = f.water
		case "notes":
			form.Notes = f.notes
		case "photo":
			form.Photo, err = loadPhoto(f.photo)
		case "private":
			form.IsPublic = !f.private
		case "public":
			form.IsPublic = f.public
		}
	})
	return err
}

func optFloat(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseFloat(name, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// fetchWeather запрашивает погоду для позиции формы; без позиции погоды нет.
func fetchWeather(ctx context.Context, app *bootstrap.App, form model.CatchForm) (*model.WeatherSnapshot, error) {
	if form.Latitude == nil || form.Longitude == nil {
		return nil, fmt.Errorf("--weather needs --at-pos")
	}
	w, err := app.Weather.Current(ctx, *form.Latitude, *form.Longitude)
	if err != nil {
		return nil, err
	}
	return w.Snapshot(), nil
}

type catchAddCmd struct{}

func (catchAddCmd) Name() string        { return "catch-add" }
func (catchAddCmd) Description() string { return "Record a catch" }
func (catchAddCmd) Usage() string {
	return "catch-add [--length cm] [--weight g] [--at time] [--at-pos lat,lon] [--water name] [--notes text] [--photo file] [--private] [--weather] <species>"
}

func (catchAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("catch-add")
	f := bindCatchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	form := model.CatchForm{CaughtAt: time.Now(), IsPublic: true}
	if err := f.apply(fs, &form); err != nil {
		return err
	}
	if fs.NArg() == 1 {
		form.Species = strings.TrimSpace(fs.Arg(0))
	} else if fs.NArg() > 1 {
		return ErrUsage
	}
	if form.Species == "" {
		return ErrUsage
	}

	app, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if _, ok := app.Species.Get(form.Species); !ok {
		Logger.Infow("unknown species id, storing as given", "species", form.Species)
	}

	var weather *model.WeatherSnapshot
	if f.weather {
		weather, err = fetchWeather(ctx, app, form)
		if err != nil {
			fmt.Fprintf(Out, "Weather unavailable: %v\n", err)
		}
	}

	// коллекция в памяти должна быть загружена до записи
	app.Catches.Refresh(ctx)
	if msg := app.Catches.Err(); msg != "" {
		return errFromService(msg, "")
	}
	saved, ok := app.Catches.Add(ctx, form, weather)
	if !ok {
		return errFromService(app.Catches.Err(), "could not save catch")
	}
	if form.Photo != nil && saved.PhotoURL == nil {
		fmt.Fprintln(Out, "Photo was not uploaded (login with --remote to attach photos)")
	}
	fmt.Fprintln(Out, "Saved:")
	fmt.Fprintf(Out, "  %s\n", view.FromCatch(*saved, app.Species.Name).Line())
	return nil
}

func init() { RegisterCmd(catchAddCmd{}) }
