package img

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			canvas.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return canvas
}

func TestCropSquare_ImagenApaisada(t *testing.T) {
	p := NewProcessor()

	cropped := p.CropSquare(testImage(100, 60))

	assert.Equal(t, 60, cropped.Bounds().Dx(), "el lado es el mínimo de ancho y alto")
	assert.Equal(t, 60, cropped.Bounds().Dy())
}

func TestCropSquare_ImagenVertical(t *testing.T) {
	p := NewProcessor()

	cropped := p.CropSquare(testImage(40, 90))

	assert.Equal(t, 40, cropped.Bounds().Dx())
	assert.Equal(t, 40, cropped.Bounds().Dy())
}

func TestCropSquare_YaCuadrada(t *testing.T) {
	p := NewProcessor()

	cropped := p.CropSquare(testImage(50, 50))

	assert.Equal(t, 50, cropped.Bounds().Dx())
	assert.Equal(t, 50, cropped.Bounds().Dy())
}

func TestResize_EscalaAlTamanoObjetivo(t *testing.T) {
	p := NewProcessor()

	resized := p.Resize(testImage(500, 500), 200)

	assert.Equal(t, 200, resized.Bounds().Dx())
	assert.Equal(t, 200, resized.Bounds().Dy())
}

func TestDecode_PNG(t *testing.T) {
	p := NewProcessor()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(30, 20)))

	decoded, err := p.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 30, decoded.Bounds().Dx())
	assert.Equal(t, 20, decoded.Bounds().Dy())
}

func TestDecode_BytesInvalidos(t *testing.T) {
	p := NewProcessor()

	_, err := p.Decode([]byte("esto no es una imagen"))
	assert.Error(t, err)
}

func TestEncodeJPEG_Roundtrip(t *testing.T) {
	p := NewProcessor()

	body, err := p.EncodeJPEG(testImage(64, 64))
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)

	decoded, err := p.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 64, decoded.Bounds().Dy())
}
