package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: "INFO", want: zerolog.InfoLevel},
		{input: " warn ", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "trace", want: zerolog.TraceLevel},
		{input: "", wantErr: true},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)
	ctx := logger.WithContext(context.Background())

	FromCtx(ctx).Info().Str("base", "home").Msg("dispatched")

	assert.Contains(t, buf.String(), "dispatched")
	assert.Contains(t, buf.String(), "home")
}

func TestSetLevel(t *testing.T) {
	prev := Level()
	t.Cleanup(func() { SetLevel(prev) })

	SetLevel(zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, Level())
}
