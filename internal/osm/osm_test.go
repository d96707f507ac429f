package osm

import (
	"FishLog/internal/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overpassBody = `{
  "elements": [
    {"type": "node", "id": 1, "lat": 59.1, "lon": 18.2, "tags": {"leisure": "slipway", "name": "Hamnen", "name:sv": "Hamnrampen"}},
    {"type": "way", "id": 2, "center": {"lat": 58.4, "lon": 15.6}, "tags": {"leisure": "slipway", "name": "Sjöviken"}},
    {"type": "node", "id": 3, "lat": 57.0, "lon": 12.0},
    {"type": "way", "id": 4}
  ]
}`

func TestQuery(t *testing.T) {
	q := Query(orb.Bound{Min: orb.Point{10.5, 55}, Max: orb.Point{24.5, 69.5}})
	assert.Contains(t, q, `node["leisure"="slipway"](55,10.5,69.5,24.5);`)
	assert.Contains(t, q, `way["leisure"="slipway"](55,10.5,69.5,24.5);`)
	assert.Contains(t, q, "out center;")
}

func TestClient_BoatRamps(t *testing.T) {
	var gotQuery, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotCT = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotQuery = r.PostForm.Get("data")
		_, _ = w.Write([]byte(overpassBody))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{OverpassURL: srv.URL}, nil)
	ramps, err := c.Sweden(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotCT)
	assert.Contains(t, gotQuery, "(55,10.5,69.5,24.5)")

	require.Len(t, ramps, 3)
	assert.Equal(t, int64(1), ramps[0].ID)
	assert.Equal(t, "Hamnrampen", ramps[0].Name())
	assert.Equal(t, 59.1, ramps[0].Lat())
	assert.Equal(t, 18.2, ramps[0].Lon())

	assert.Equal(t, "Sjöviken", ramps[1].Name())
	assert.Equal(t, 58.4, ramps[1].Lat())
	assert.Equal(t, 15.6, ramps[1].Lon())

	assert.Equal(t, "", ramps[2].Name())
	assert.NotNil(t, ramps[2].Tags)
}

func TestClient_Nearby_DefaultRadius(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotQuery = r.PostForm.Get("data")
		_, _ = w.Write([]byte(`{"elements":[]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{OverpassURL: srv.URL}, nil)
	ramps, err := c.Nearby(context.Background(), 59.0, 18.0, 0)
	require.NoError(t, err)
	assert.Empty(t, ramps)
	// 50 км по широте это примерно 0.45 градуса
	assert.Contains(t, gotQuery, "(58.55")
}

func TestClient_BoatRamps_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{OverpassURL: srv.URL}, nil)
	_, err := c.Sweden(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_BoatRamps_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(&config.Config{OverpassURL: srv.URL}, nil)
	c.timeout = 50 * time.Millisecond

	_, err := c.Sweden(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}
