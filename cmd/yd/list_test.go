package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunList(t *testing.T) {
	cfg := setupDirs(t)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, cfg, false, 200))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "PROVIDER")
	assert.Contains(t, out, "codex")
	assert.Contains(t, out, "warmup")
	assert.Contains(t, out, "keep")
	assert.Contains(t, out, "3 session(s), 2 warmup")
}

func TestRunListWarmupOnly(t *testing.T) {
	cfg := setupDirs(t)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, cfg, true, 200))

	out := ansi.Strip(buf.String())
	assert.NotContains(t, out, "keep.jsonl")
	assert.Contains(t, out, "2 session(s), 2 warmup")
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "<1m"},
		{15 * time.Minute, "15m"},
		{2 * time.Hour, "2h"},
		{24 * time.Hour, "1d"},
		{76 * time.Hour, "3d 4h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAge(tt.d), tt.d.String())
	}
}
