package logstyle

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goidioms/internal/ux"
)

func TestKVLine(t *testing.T) {
	assert.Equal(t, "service starting component=directory", kvLine("service starting", "component", "directory"))
	assert.Equal(t, "lookup user_id=999 attempt=2", kvLine("lookup", "user_id", 999, "attempt", 2))
	assert.Equal(t, "bare", kvLine("bare"))
	// A dangling key disappears without complaint.
	assert.Equal(t, "lookup user_id=999", kvLine("lookup", "user_id", 999, "dangling"))
}

func TestVariantsRun(t *testing.T) {
	anchors := map[string][]string{
		"stdlog": {
			"directory: ",
			"service starting, component directory",
			"WARN user lookup failed for id 999",
			"service stopping after 4m2s",
		},
		"keyvals": {
			"service starting component=directory",
			"user lookup failed level=warn user_id=999",
			"service stopping uptime=4m2s",
			"the dangling key just vanished",
		},
		"slog": {
			`msg="service starting" component=directory`,
			`msg="user lookup failed" user_id=999`,
			`"msg":"service starting","component":"directory"`,
			`"req":{"user_id":999,"attempt":2}`,
			"!BADKEY=user_id",
			"after LevelVar.Set(Debug) the same call prints",
		},
		"tinted": {
			"INF service starting component=directory",
			"WRN user lookup failed user_id=999",
			"user not found",
			"service stopping uptime=4m2s",
		},
	}

	for _, v := range Demo().Variants {
		t.Run(v.ID, func(t *testing.T) {
			var buf bytes.Buffer
			err := v.Run(context.Background(), ux.NewPlainPrinter(&buf))
			require.NoError(t, err)
			for _, anchor := range anchors[v.ID] {
				assert.Contains(t, buf.String(), anchor)
			}
		})
	}
}

// The gated logger must drop the first debug line and emit the second.
func TestSlogLevelGate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSlog(context.Background(), ux.NewPlainPrinter(&buf)))
	assert.Equal(t, 1, strings.Count(buf.String(), `msg="cache warmed"`))
}

// Warnings must come out at WARN whichever handler is installed.
func TestWarnLevelSurvivesHandlers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSlog(context.Background(), ux.NewPlainPrinter(&buf)))
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestDemoShape(t *testing.T) {
	d := Demo()
	assert.Equal(t, "logging", d.Name)
	assert.Equal(t, []string{"stdlog", "keyvals", "slog", "tinted"}, d.VariantIDs())
}
