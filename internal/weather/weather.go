// Package weather получает текущую погоду для точки: SMHI в первую очередь,
// OpenWeatherMap как запасной вариант при наличии API-ключа.
package weather

import (
	"FishLog/internal/cli/model"
	"FishLog/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	cacheTTL       = 10 * time.Minute
	cacheCleanup   = 15 * time.Minute
	defaultTimeout = 10 * time.Second
	unknownSymbol  = "Okänt"
)

var ErrUnavailable = errors.New("weather unavailable")

type Weather struct {
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	Conditions    string
	Pressure      float64
	Humidity      float64
	Source        string
}

// Snapshot сокращает данные до того, что сохраняется вместе с уловом.
func (w *Weather) Snapshot() *model.WeatherSnapshot {
	if w == nil {
		return nil
	}
	return &model.WeatherSnapshot{
		Temp:       w.Temperature,
		Wind:       w.WindSpeed,
		Conditions: w.Conditions,
		Pressure:   w.Pressure,
	}
}

type Provider struct {
	client  *http.Client
	cache   *cache.Cache
	smhiURL string
	owmURL  string
	owmKey  string
	logger  *zap.SugaredLogger
}

func NewProvider(cfg *config.Config, logger *zap.SugaredLogger) *Provider {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Provider{
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(cacheTTL, cacheCleanup),
		smhiURL: strings.TrimRight(cfg.SMHIURL, "/"),
		owmURL:  strings.TrimRight(cfg.OpenWeatherMapURL, "/"),
		owmKey:  cfg.OpenWeatherMapKey,
		logger:  logger,
	}
}

// Current возвращает погоду для точки. Результат кэшируется на 10 минут
// по координатам, округлённым до 6 знаков.
func (p *Provider) Current(ctx context.Context, lat, lon float64) (*Weather, error) {
	lat, lon = round6(lat), round6(lon)
	key := cacheKey(lat, lon)
	if cached, found := p.cache.Get(key); found {
		if w, ok := cached.(*Weather); ok {
			return w, nil
		}
	}

	w, err := p.fromSMHI(ctx, lat, lon)
	if err != nil {
		p.logger.Warnw("SMHI request failed", "lat", lat, "lon", lon, "error", err)
		if p.owmKey == "" {
			return nil, errors.Wrap(ErrUnavailable, err.Error())
		}
		w, err = p.fromOpenWeatherMap(ctx, lat, lon)
		if err != nil {
			p.logger.Warnw("OpenWeatherMap request failed", "lat", lat, "lon", lon, "error", err)
			return nil, errors.Wrap(ErrUnavailable, err.Error())
		}
	}

	p.cache.Set(key, w, cache.DefaultExpiration)
	return w, nil
}

type smhiResponse struct {
	TimeSeries []struct {
		ValidTime  string `json:"validTime"`
		Parameters []struct {
			Name   string    `json:"name"`
			Values []float64 `json:"values"`
		} `json:"parameters"`
	} `json:"timeSeries"`
}

func (p *Provider) fromSMHI(ctx context.Context, lat, lon float64) (*Weather, error) {
	u := fmt.Sprintf("%s/api/category/pmp3g/version/2/geotype/point/lon/%s/lat/%s/data.json",
		p.smhiURL, formatCoord(lon), formatCoord(lat))

	var data smhiResponse
	if err := p.getJSON(ctx, u, &data); err != nil {
		return nil, errors.Wrap(err, "smhi")
	}
	// первая точка ряда соответствует текущему моменту
	if len(data.TimeSeries) == 0 {
		return nil, errors.New("smhi: empty time series")
	}

	params := map[string]float64{}
	for _, prm := range data.TimeSeries[0].Parameters {
		switch prm.Name {
		case "t", "ws", "wd", "msl", "r", "Wsymb2":
			if len(prm.Values) > 0 {
				params[prm.Name] = prm.Values[0]
			}
		}
	}

	return &Weather{
		Temperature:   params["t"],
		WindSpeed:     params["ws"],
		WindDirection: params["wd"],
		Conditions:    SymbolText(int(params["Wsymb2"])),
		Pressure:      params["msl"],
		Humidity:      params["r"],
		Source:        "smhi",
	}, nil
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (p *Provider) fromOpenWeatherMap(ctx context.Context, lat, lon float64) (*Weather, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("appid", p.owmKey)
	q.Set("units", "metric")
	q.Set("lang", "se")

	var data owmResponse
	if err := p.getJSON(ctx, p.owmURL+"/data/2.5/weather?"+q.Encode(), &data); err != nil {
		return nil, errors.Wrap(err, "openweathermap")
	}

	conditions := unknownSymbol
	if len(data.Weather) > 0 && data.Weather[0].Description != "" {
		conditions = data.Weather[0].Description
	}
	return &Weather{
		Temperature:   data.Main.Temp,
		WindSpeed:     data.Wind.Speed,
		WindDirection: data.Wind.Deg,
		Conditions:    conditions,
		Pressure:      data.Main.Pressure,
		Humidity:      data.Main.Humidity,
		Source:        "openweathermap",
	}, nil
}

func (p *Provider) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cacheKey(lat, lon float64) string {
	return formatCoord(lat) + "," + formatCoord(lon)
}
