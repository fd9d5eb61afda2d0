package rgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHSVPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red", 0, 1, 1, Color{R: 255}},
		{"green", 1.0 / 3, 1, 1, Color{G: 255}},
		{"cyan", 0.5, 1, 1, Color{G: 255, B: 255}},
		{"white", 0, 0, 1, Color{R: 255, G: 255, B: 255}},
		{"black", 0.2, 1, 0, Color{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromHSV(tt.h, tt.s, tt.v))
		})
	}
}

func TestFromHSVHueWraps(t *testing.T) {
	assert.Equal(t, FromHSV(0.75, 1, 1), FromHSV(-0.25, 1, 1))
	assert.Equal(t, FromHSV(0.25, 1, 1), FromHSV(1.25, 1, 1))
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#0a141e")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 10, G: 20, B: 30}, c)

	c, err = FromHex("fff")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 255, B: 255}, c)

	c, err = FromHex("#F00")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 255}, c)

	for _, bad := range []string{"", "#12345", "zzzzzz", "#gggggg"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrInvalidHex, "input %q", bad)
	}
}

func TestOffAndString(t *testing.T) {
	assert.True(t, Off.IsOff())
	assert.True(t, Color{}.IsOff())
	assert.False(t, Color{B: 1}.IsOff())
	assert.Equal(t, "#0a141e", Color{R: 10, G: 20, B: 30}.String())
}
