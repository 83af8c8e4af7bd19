package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 200, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"webp", WebP},
		{"WEBP", WebP},
		{".tga", TGA},
		{" png ", PNG},
		{"", WebP},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("bmp")
	assert.Error(t, err)
}

func TestEncodeFormats(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, testImage(), f))
			assert.NotZero(t, buf.Len())
		})
	}
	assert.Error(t, Encode(&bytes.Buffer{}, testImage(), Format("gif")))
}

func TestEncodeWebPHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), WebP))
	b := buf.Bytes()
	require.GreaterOrEqual(t, len(b), 12)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WEBP", string(b[8:12]))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frame"+PNG.Ext())
	src := testImage()
	require.NoError(t, Save(path, src, PNG))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())

	r, g, b, _ := got.At(5, 3).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(180), g>>8)
	assert.Equal(t, uint32(200), b>>8)
}
