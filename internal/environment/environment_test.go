package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Flag
		wantErr bool
	}{
		{input: "local", want: Local},
		{input: "FEATURE", want: Local},
		{input: "Develop", want: Dev},
		{input: "development", want: Dev},
		{input: "rel", want: Release},
		{input: "production", want: Prod},
		{input: "LIVE", want: Prod},
		{input: "master", want: Prod},
		{input: " all ", want: All},
		{input: "staging", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMask(t *testing.T) {
	mask, err := ParseMask("local|dev")
	require.NoError(t, err)
	assert.Equal(t, Local|Dev, mask)

	mask, err = ParseMask("release,prod")
	require.NoError(t, err)
	assert.Equal(t, Release|Prod, mask)

	_, err = ParseMask("|")
	assert.Error(t, err)

	_, err = ParseMask("dev|qa")
	assert.Error(t, err)
}

func TestFlag_Has(t *testing.T) {
	assert.True(t, All.Has(Prod))
	assert.True(t, (Local | Dev).Has(Dev))
	assert.False(t, (Local | Dev).Has(Prod))
	assert.False(t, Flag(0).Has(Local))
}

func TestFlag_String(t *testing.T) {
	assert.Equal(t, "ALL", All.String())
	assert.Equal(t, "LOCAL|DEV", (Local | Dev).String())
	assert.Equal(t, "PROD", Prod.String())
	assert.Equal(t, "NONE", Flag(0).String())
}

func TestFlag_UnmarshalText(t *testing.T) {
	var f Flag
	require.NoError(t, f.UnmarshalText([]byte("dev|release")))
	assert.Equal(t, Dev|Release, f)
	assert.Error(t, f.UnmarshalText([]byte("nowhere")))
}
