// Package osm ищет спуски для лодок (leisure=slipway) через Overpass API.
package osm

import (
	"FishLog/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	requestTimeout  = 15 * time.Second
	defaultRadiusKm = 50
)

var ErrTimeout = errors.New("overpass timeout: try a smaller area or retry later")

// SwedenBound: приблизительные границы Швеции.
var SwedenBound = orb.Bound{Min: orb.Point{10.5, 55.0}, Max: orb.Point{24.5, 69.5}}

type BoatRamp struct {
	ID    int64
	Point orb.Point
	Tags  map[string]string
}

func (r BoatRamp) Lat() float64 { return r.Point.Lat() }
func (r BoatRamp) Lon() float64 { return r.Point.Lon() }

// Name предпочитает шведское название.
func (r BoatRamp) Name() string {
	if v := r.Tags["name:sv"]; v != "" {
		return v
	}
	return r.Tags["name"]
}

type Client struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

func NewClient(cfg *config.Config, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		client:   &http.Client{},
		endpoint: cfg.OverpassURL,
		timeout:  requestTimeout,
		logger:   logger,
	}
}

type overpassResponse struct {
	Elements []struct {
		Type   string   `json:"type"`
		ID     int64    `json:"id"`
		Lat    *float64 `json:"lat"`
		Lon    *float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Query строит запрос Overpass: узлы и линии со спусками, для линий берётся центр.
func Query(b orb.Bound) string {
	bbox := fmt.Sprintf("%g,%g,%g,%g", b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
	return "[out:json][timeout:10];\n(\n" +
		"  node[\"leisure\"=\"slipway\"](" + bbox + ");\n" +
		"  way[\"leisure\"=\"slipway\"](" + bbox + ");\n" +
		");\nout center;\n"
}

// BoatRamps возвращает спуски внутри прямоугольника.
func (c *Client) BoatRamps(ctx context.Context, b orb.Bound) ([]BoatRamp, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("data", Query(b))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, errors.Wrap(err, "overpass request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warnw("overpass error", "status", resp.StatusCode, "body", strings.TrimSpace(string(body)))
		return nil, errors.Errorf("overpass api error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, errors.Wrap(err, "decode overpass response")
	}

	out := make([]BoatRamp, 0, len(data.Elements))
	for _, el := range data.Elements {
		var pt orb.Point
		switch {
		case el.Type == "way" && el.Center != nil:
			pt = orb.Point{el.Center.Lon, el.Center.Lat}
		case el.Lat != nil && el.Lon != nil:
			pt = orb.Point{*el.Lon, *el.Lat}
		default:
			continue
		}
		tags := el.Tags
		if tags == nil {
			tags = map[string]string{}
		}
		out = append(out, BoatRamp{ID: el.ID, Point: pt, Tags: tags})
	}
	return out, nil
}

// Nearby ищет спуски в квадрате вокруг точки; radiusKm <= 0 означает 50 км.
func (c *Client) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]BoatRamp, error) {
	if radiusKm <= 0 {
		radiusKm = defaultRadiusKm
	}
	b := geo.NewBoundAroundPoint(orb.Point{lon, lat}, radiusKm*1000)
	return c.BoatRamps(ctx, b)
}

// Sweden загружает спуски по всей Швеции; запрос тяжёлый.
func (c *Client) Sweden(ctx context.Context) ([]BoatRamp, error) {
	return c.BoatRamps(ctx, SwedenBound)
}
