package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "debug", Format: "json"}, &buf)
	t.Cleanup(func() { InitWithWriter(Config{}, &bytes.Buffer{}) })

	Debug().Str("job", "jd.txt").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "jd.txt", entry["job"])
	assert.Equal(t, "loaded", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInitWithWriter_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		emitted bool
	}{
		{"info hides debug", "info", false},
		{"debug shows debug", "debug", true},
		{"unknown falls back to info", "loud", false},
		{"empty falls back to info", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitWithWriter(Config{Level: tt.level}, &buf)
			t.Cleanup(func() { InitWithWriter(Config{}, &bytes.Buffer{}) })

			Debug().Msg("hidden?")
			assert.Equal(t, tt.emitted, buf.Len() > 0)
		})
	}
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "info", Format: "pretty"}, &buf)
	t.Cleanup(func() { InitWithWriter(Config{}, &bytes.Buffer{}) })

	Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	assert.Equal(t, &Logger, Ctx(context.Background()))

	l := zerolog.New(&bytes.Buffer{})
	ctx := l.WithContext(context.Background())
	assert.NotSame(t, &Logger, Ctx(ctx))
}
