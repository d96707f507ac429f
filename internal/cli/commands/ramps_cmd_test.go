package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampCommands_Local(t *testing.T) {
	cfg := localCfg(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		require.NoError(t, (rampsCmd{}).Run(ctx, cfg, nil))
	})
	assert.Contains(t, out, "No boat ramps yet")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (rampAddCmd{}).Run(ctx, cfg, []string{"--water", "Mälaren", "--parking", "--desc", "Betongramp", "Kungsholmen", "59.33,18.03"}))
		require.NoError(t, (rampAddCmd{}).Run(ctx, cfg, []string{"Hjo", "58.30,14.29"}))
	})
	assert.Contains(t, out, "Kungsholmen")
	assert.Contains(t, out, "parking:yes")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (rampsCmd{}).Run(ctx, cfg, nil))
	})
	assert.Contains(t, out, "Total: 2")
	assert.Contains(t, out, `"Betongramp"`)

	out = withStdoutCapture(t, func() {
		require.NoError(t, (rampsCmd{}).Run(ctx, cfg, []string{"--near", "58.4,14.3", "--limit", "1"}))
	})
	assert.Contains(t, out, "Hjo")
	assert.NotContains(t, out, "Kungsholmen")

	assert.Equal(t, ErrUsage, (rampAddCmd{}).Run(ctx, cfg, []string{"OnlyName"}))
	assert.Error(t, (rampAddCmd{}).Run(ctx, cfg, []string{"X", "abc"}))
	assert.Equal(t, ErrUsage, (rampsCmd{}).Run(ctx, cfg, []string{"extra"}))
}

func TestRampAdd_RemoteWithoutLoginSavesLocally(t *testing.T) {
	ts := newServer(t)
	cfg := remoteCfg(t, ts.URL)
	out := withStdoutCapture(t, func() {
		require.NoError(t, (rampAddCmd{}).Run(context.Background(), cfg, []string{"Bryggan", "59,18"}))
	})
	assert.Contains(t, out, "saved on this device only")
}

func TestRampsOSM_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"elements":[{"type":"node","id":7,"lat":59.1,"lon":18.1,"tags":{"name":"Slipen"}},{"type":"way","id":8,"center":{"lat":59.2,"lon":18.2}}]}`))
	}))
	defer ts.Close()
	cfg := localCfg(t)
	cfg.OverpassURL = ts.URL
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		require.NoError(t, (rampsOSMCmd{}).Run(ctx, cfg, []string{"--radius", "10", "59.1,18.1"}))
	})
	assert.Contains(t, out, "osm:7  Slipen")
	assert.Contains(t, out, "osm:8  (unnamed)")
	assert.Contains(t, out, "Total: 2")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (rampsOSMCmd{}).Run(ctx, cfg, []string{"--sweden"}))
	})
	assert.Contains(t, out, "Total: 2")

	assert.Equal(t, ErrUsage, (rampsOSMCmd{}).Run(ctx, cfg, nil))
	assert.Equal(t, ErrUsage, (rampsOSMCmd{}).Run(ctx, cfg, []string{"--sweden", "59,18"}))
}
