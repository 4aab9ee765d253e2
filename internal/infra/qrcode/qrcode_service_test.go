package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestQRCodeService_GeneratesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateEnrollmentQR("phm_live_c29tZS1rZXktbWF0ZXJpYWw")

	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestQRCodeService_EmptyKeyRejected(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateEnrollmentQR("")

	assert.Error(t, err)
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "bogus")

	png, err := svc.GenerateEnrollmentQR("phm_web_abc123")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
