package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Run(t *testing.T) {
	cfg := localCfg(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		require.NoError(t, (statsCmd{}).Run(ctx, cfg, nil))
	})
	assert.Contains(t, out, "No catches yet")

	withStdoutCapture(t, func() {
		require.NoError(t, (catchAddCmd{}).Run(ctx, cfg, []string{"--length", "62", "--weight", "3200", "gadda"}))
		require.NoError(t, (catchAddCmd{}).Run(ctx, cfg, []string{"--length", "30", "--weight", "400", "abborre"}))
		require.NoError(t, (catchAddCmd{}).Run(ctx, cfg, []string{"--length", "55", "gadda"}))
	})

	out = withStdoutCapture(t, func() {
		require.NoError(t, (statsCmd{}).Run(ctx, cfg, nil))
	})
	assert.Contains(t, out, "Catches:  3")
	assert.Contains(t, out, "Species:  2")
	assert.Contains(t, out, "Length:   147 cm")
	assert.Contains(t, out, "Weight:   3.6 kg")
	assert.Regexp(t, `Gädda\s+2`, out)
	assert.Regexp(t, `Abborre\s+1`, out)

	assert.Equal(t, ErrUsage, (statsCmd{}).Run(ctx, cfg, []string{"extra"}))
}
