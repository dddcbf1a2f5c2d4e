package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService("https://elyukal.example.com/", 256, "M")

	data, err := service.GenerateStoreQR("store-1")

	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngMagic), "expected PNG output")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	service := NewQRCodeService("https://elyukal.example.com", 128, "X")

	data, err := service.GenerateStoreQR("store-1")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}
