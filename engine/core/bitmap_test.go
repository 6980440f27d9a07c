package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBitmap(t *testing.T) {
	b, err := ParseBitmap([]string{
		"010",
		"101",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.W)
	assert.Equal(t, 2, b.H)
	assert.True(t, b.At(1, 0))
	assert.False(t, b.At(0, 0))
	assert.True(t, b.At(2, 1))
	assert.False(t, b.At(3, 0), "out of range reads are unset")
	assert.False(t, b.At(-1, 0))
	assert.Equal(t, 3, b.Count())
}

func TestParseBitmapRejectsMalformed(t *testing.T) {
	_, err := ParseBitmap(nil)
	assert.Error(t, err)

	_, err = ParseBitmap([]string{"01", "011"})
	assert.ErrorContains(t, err, "row 1")

	_, err = ParseBitmap([]string{"0x"})
	assert.ErrorContains(t, err, "invalid pixel")
}

func TestUpscale(t *testing.T) {
	b, err := ParseBitmap([]string{"10", "01"})
	require.NoError(t, err)

	up := b.Upscale(2)
	assert.Equal(t, 4, up.W)
	assert.Equal(t, 4, up.H)
	assert.Equal(t, 8, up.Count())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, b.At(x/2, y/2), up.At(x, y), "pixel %d,%d", x, y)
		}
	}

	assert.Equal(t, b, b.Upscale(1))
}

func TestMustSheet(t *testing.T) {
	sheet := MustSheet(SpriteScale, []string{"11", "10"}, []string{"01", "11"})
	require.Len(t, sheet, 2)
	w, h := sheet.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	assert.Panics(t, func() { MustSheet(2) })
	assert.Panics(t, func() { MustSheet(2, []string{"1a"}) })
	assert.Panics(t, func() { MustSheet(2, []string{"11"}, []string{"111"}) })
}
